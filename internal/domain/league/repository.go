package league

import "context"

// Repository persists archived leagues. Upserts are keyed by LeagueID.
type Repository interface {
	UpsertMany(ctx context.Context, leagues []League) error
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
}
