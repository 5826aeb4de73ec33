package match

import "context"

// FixtureQuery holds the /fixtures filters. Zero values are omitted from the request.
type FixtureQuery struct {
	ID     int64
	Date   string
	Status string
	Live   string
}

// Provider is the upstream football-data source.
type Provider interface {
	Fixtures(ctx context.Context, query FixtureQuery) ([]RawFixture, error)
	Lineups(ctx context.Context, fixtureID int64) ([]Lineup, error)
	Statistics(ctx context.Context, fixtureID int64) ([]TeamStatistics, error)
	Odds(ctx context.Context, fixtureID int64) ([]Odds, error)
	HeadToHead(ctx context.Context, homeTeamID, awayTeamID int64, last int) ([]RawFixture, error)
}
