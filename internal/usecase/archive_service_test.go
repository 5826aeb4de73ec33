package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/fixture"
	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFixtureRepository struct {
	err error
}

func (r failingFixtureRepository) UpsertMany(context.Context, []fixture.Fixture) error {
	return r.err
}

func (r failingFixtureRepository) ListByKickoffRange(context.Context, time.Time, time.Time) ([]fixture.Fixture, error) {
	return nil, r.err
}

func newArchiveService(t *testing.T, fixtures fixture.Repository) (*ArchiveService, *memory.LeagueRepository) {
	t.Helper()

	leagues := memory.NewLeagueRepository()
	service, err := NewArchiveService(leagues, fixtures, 2, nil, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(service.Close)
	return service, leagues
}

func TestArchiveService_Archive_KeepsFinishedValidFixtures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, leagues := newArchiveService(t, memory.NewFixtureRepository())
	kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

	notStarted := rawFixture(2, 39, "Premier League", "England", kickoff)
	notStarted.Fixture.Status.Short = match.StatusNotStarted
	broken := rawFixture(3, 39, "Premier League", "England", kickoff)
	broken.Teams = nil

	written, err := service.Archive(ctx, []match.RawFixture{
		rawFixture(1, 39, "Premier League", "England", kickoff),
		notStarted,
		broken,
		rawFixture(4, 39, "Premier League", "England", kickoff.Add(2*time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	stored, ok, err := leagues.GetByID(ctx, 39)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Premier League", stored.Name)
	assert.Equal(t, 2024, stored.Season)

	items, err := service.ListByDate(ctx, "2025-03-01")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].FixtureID)
	assert.Equal(t, int64(4), items[1].FixtureID)
	assert.Equal(t, "FT", items[0].Status.Short)
}

func TestArchiveService_Enqueue_WritesInBackground(t *testing.T) {
	t.Parallel()

	fixtures := memory.NewFixtureRepository()
	leagues := memory.NewLeagueRepository()
	service, err := NewArchiveService(leagues, fixtures, 1, nil, logging.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	accepted := service.Enqueue(ctx, []match.RawFixture{rawFixture(1, 39, "Premier League", "England", kickoff)})
	cancel()
	require.True(t, accepted)

	service.Close()

	items, err := fixtures.ListByKickoffRange(context.Background(), kickoff.Add(-time.Hour), kickoff.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, items, 1, "write must survive cancellation of the request context")
}

func TestArchiveService_ListByDate_UsesProviderTimezone(t *testing.T) {
	t.Parallel()

	lagos, err := time.LoadLocation("Africa/Lagos")
	require.NoError(t, err)

	service, err := NewArchiveService(memory.NewLeagueRepository(), memory.NewFixtureRepository(), 1, lagos, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(service.Close)

	ctx := context.Background()
	afterMidnight := time.Date(2025, 3, 1, 0, 30, 0, 0, lagos)
	lateNight := time.Date(2025, 3, 1, 23, 30, 0, 0, lagos)
	_, err = service.Archive(ctx, []match.RawFixture{
		rawFixture(1, 39, "Premier League", "England", afterMidnight),
		rawFixture(2, 39, "Premier League", "England", lateNight),
	})
	require.NoError(t, err)

	items, err := service.ListByDate(ctx, "2025-03-01")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].FixtureID)
	assert.Equal(t, int64(2), items[1].FixtureID)

	previous, err := service.ListByDate(ctx, "2025-02-28")
	require.NoError(t, err)
	assert.Empty(t, previous)
}

func TestArchiveService_Enqueue_EmptyBatch(t *testing.T) {
	t.Parallel()

	service, _ := newArchiveService(t, memory.NewFixtureRepository())
	assert.False(t, service.Enqueue(context.Background(), nil))
}

func TestArchiveService_Archive_PropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	service, _ := newArchiveService(t, failingFixtureRepository{err: errors.New("connection refused")})
	kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

	_, err := service.Archive(context.Background(), []match.RawFixture{rawFixture(1, 39, "Premier League", "England", kickoff)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert archived fixtures")
}

func TestArchiveService_ListByDate_Errors(t *testing.T) {
	t.Parallel()

	service, _ := newArchiveService(t, failingFixtureRepository{err: errors.New("connection refused")})

	_, err := service.ListByDate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.ListByDate(context.Background(), "01-03-2025")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.ListByDate(context.Background(), "2025-03-01")
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, msgArchiveFailed, opErr.Message)
}

func TestArchiveService_NilIsDisabled(t *testing.T) {
	t.Parallel()

	var service *ArchiveService
	_, err := service.ListByDate(context.Background(), "2025-03-01")
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
	assert.False(t, service.Enqueue(context.Background(), []match.RawFixture{{}}))
	service.Close()
}
