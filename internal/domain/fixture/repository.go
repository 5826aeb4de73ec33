package fixture

import (
	"context"
	"time"
)

// Repository persists archived fixtures. Upserts are keyed by FixtureID.
type Repository interface {
	UpsertMany(ctx context.Context, fixtures []Fixture) error
	ListByKickoffRange(ctx context.Context, from, to time.Time) ([]Fixture, error)
}
