package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livescore/internal/domain/fixture"
	qb "github.com/riskibarqy/livescore/internal/platform/querybuilder"
)

const fixtureUpsertSuffix = `ON CONFLICT (fixture_id)
DO UPDATE SET
    league_id = EXCLUDED.league_id,
    season = EXCLUDED.season,
    kickoff_at = EXCLUDED.kickoff_at,
    status_long = EXCLUDED.status_long,
    status_short = EXCLUDED.status_short,
    status_elapsed = EXCLUDED.status_elapsed,
    venue_id = EXCLUDED.venue_id,
    venue_name = EXCLUDED.venue_name,
    venue_city = EXCLUDED.venue_city,
    home_team_id = EXCLUDED.home_team_id,
    home_team_name = EXCLUDED.home_team_name,
    home_team_logo = EXCLUDED.home_team_logo,
    away_team_id = EXCLUDED.away_team_id,
    away_team_name = EXCLUDED.away_team_name,
    away_team_logo = EXCLUDED.away_team_logo,
    goals_home = EXCLUDED.goals_home,
    goals_away = EXCLUDED.goals_away,
    halftime_home = EXCLUDED.halftime_home,
    halftime_away = EXCLUDED.halftime_away,
    fulltime_home = EXCLUDED.fulltime_home,
    fulltime_away = EXCLUDED.fulltime_away,
    updated_at = NOW()`

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) UpsertMany(ctx context.Context, fixtures []fixture.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows := make([]fixtureInsertModel, 0, len(fixtures))
	seen := make(map[int64]int, len(fixtures))
	for _, item := range fixtures {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validate fixture=%d: %w", item.FixtureID, err)
		}
		if idx, ok := seen[item.FixtureID]; ok {
			rows[idx] = toFixtureInsertModel(item)
			continue
		}
		seen[item.FixtureID] = len(rows)
		rows = append(rows, toFixtureInsertModel(item))
	}

	for start := 0; start < len(rows); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(rows))
		query, args, err := qb.InsertModels("fixtures", rows[start:end], fixtureUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build upsert fixtures query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixtures batch=%d..%d: %w", start, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert fixtures tx: %w", err)
	}
	return nil
}

func (r *FixtureRepository) ListByKickoffRange(ctx context.Context, from, to time.Time) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Gte("kickoff_at", from.UTC()),
			qb.Lt("kickoff_at", to.UTC()),
		).
		OrderBy("kickoff_at", "fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by kickoff range query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by kickoff range: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromFixtureTableModel(row))
	}
	return out, nil
}

func toFixtureInsertModel(item fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		FixtureID:     item.FixtureID,
		LeagueID:      item.LeagueID,
		Season:        item.Season,
		KickoffAt:     item.KickoffAt.UTC(),
		StatusLong:    item.Status.Long,
		StatusShort:   item.Status.Short,
		StatusElapsed: nullInt32FromPtr(item.Status.Elapsed),
		VenueID:       item.Venue.ID,
		VenueName:     item.Venue.Name,
		VenueCity:     item.Venue.City,
		HomeTeamID:    item.HomeTeam.ID,
		HomeTeamName:  item.HomeTeam.Name,
		HomeTeamLogo:  item.HomeTeam.Logo,
		AwayTeamID:    item.AwayTeam.ID,
		AwayTeamName:  item.AwayTeam.Name,
		AwayTeamLogo:  item.AwayTeam.Logo,
		GoalsHome:     nullInt32FromPtr(item.Goals.Home),
		GoalsAway:     nullInt32FromPtr(item.Goals.Away),
		HalftimeHome:  nullInt32FromPtr(item.Halftime.Home),
		HalftimeAway:  nullInt32FromPtr(item.Halftime.Away),
		FulltimeHome:  nullInt32FromPtr(item.Fulltime.Home),
		FulltimeAway:  nullInt32FromPtr(item.Fulltime.Away),
	}
}

func fromFixtureTableModel(row fixtureTableModel) fixture.Fixture {
	return fixture.Fixture{
		FixtureID: row.FixtureID,
		LeagueID:  row.LeagueID,
		Season:    row.Season,
		KickoffAt: row.KickoffAt.UTC(),
		Status: fixture.Status{
			Long:    row.StatusLong,
			Short:   row.StatusShort,
			Elapsed: ptrFromNullInt32(row.StatusElapsed),
		},
		Venue:    fixture.Venue{ID: row.VenueID, Name: row.VenueName, City: row.VenueCity},
		HomeTeam: fixture.Team{ID: row.HomeTeamID, Name: row.HomeTeamName, Logo: row.HomeTeamLogo},
		AwayTeam: fixture.Team{ID: row.AwayTeamID, Name: row.AwayTeamName, Logo: row.AwayTeamLogo},
		Goals:    fixture.Score{Home: ptrFromNullInt32(row.GoalsHome), Away: ptrFromNullInt32(row.GoalsAway)},
		Halftime: fixture.Score{Home: ptrFromNullInt32(row.HalftimeHome), Away: ptrFromNullInt32(row.HalftimeAway)},
		Fulltime: fixture.Score{Home: ptrFromNullInt32(row.FulltimeHome), Away: ptrFromNullInt32(row.FulltimeAway)},
	}
}
