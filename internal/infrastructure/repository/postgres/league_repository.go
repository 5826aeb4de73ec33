package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livescore/internal/domain/league"
	qb "github.com/riskibarqy/livescore/internal/platform/querybuilder"
)

const leagueUpsertSuffix = `ON CONFLICT (league_id)
DO UPDATE SET
    name = EXCLUDED.name,
    country = EXCLUDED.country,
    logo = EXCLUDED.logo,
    flag = EXCLUDED.flag,
    season = EXCLUDED.season,
    updated_at = NOW()`

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) UpsertMany(ctx context.Context, leagues []league.League) error {
	if len(leagues) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert leagues: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows := make([]leagueInsertModel, 0, len(leagues))
	seen := make(map[int64]int, len(leagues))
	for _, item := range leagues {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validate league=%d: %w", item.LeagueID, err)
		}
		row := leagueInsertModel{
			LeagueID: item.LeagueID,
			Name:     item.Name,
			Country:  item.Country,
			Logo:     item.Logo,
			Flag:     item.Flag,
			Season:   item.Season,
		}
		if idx, ok := seen[item.LeagueID]; ok {
			rows[idx] = row
			continue
		}
		seen[item.LeagueID] = len(rows)
		rows = append(rows, row)
	}

	for start := 0; start < len(rows); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(rows))
		query, args, err := qb.InsertModels("leagues", rows[start:end], leagueUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build upsert leagues query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert leagues batch=%d..%d: %w", start, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert leagues tx: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return league.League{
		LeagueID: row.LeagueID,
		Name:     row.Name,
		Country:  row.Country,
		Logo:     row.Logo,
		Flag:     row.Flag,
		Season:   row.Season,
	}, true, nil
}
