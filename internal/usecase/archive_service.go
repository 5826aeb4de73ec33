package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/livescore/internal/domain/fixture"
	"github.com/riskibarqy/livescore/internal/domain/league"
	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultArchiveWorkers = 4
	archiveWriteTimeout   = 30 * time.Second

	msgArchiveDisabled = "Match archive is not enabled"
	msgArchiveFailed   = "Failed to fetch archived matches."
)

// ArchiveService persists finished fixtures and serves them back by day.
type ArchiveService struct {
	leagues  league.Repository
	fixtures fixture.Repository
	pool     *ants.Pool
	pending  sync.WaitGroup
	location *time.Location
	logger   *logging.Logger
}

func NewArchiveService(
	leagues league.Repository,
	fixtures fixture.Repository,
	workers int,
	location *time.Location,
	logger *logging.Logger,
) (*ArchiveService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultArchiveWorkers
	}
	if location == nil {
		location = time.UTC
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create archive worker pool: %w", err)
	}

	return &ArchiveService{
		leagues:  leagues,
		fixtures: fixtures,
		pool:     pool,
		location: location,
		logger:   logger,
	}, nil
}

// Enqueue schedules a background archive of fixtures. It returns false when the
// batch was dropped because every worker is busy.
func (s *ArchiveService) Enqueue(ctx context.Context, fixtures []match.RawFixture) bool {
	if s == nil || len(fixtures) == 0 {
		return false
	}

	batch := append([]match.RawFixture(nil), fixtures...)
	detached := context.WithoutCancel(ctx)

	s.pending.Add(1)
	err := s.pool.Submit(func() {
		defer s.pending.Done()

		writeCtx, cancel := context.WithTimeout(detached, archiveWriteTimeout)
		defer cancel()

		if _, err := s.Archive(writeCtx, batch); err != nil {
			s.logger.WarnContext(writeCtx, "archive finished fixtures failed", "fixtures", len(batch), "error", err)
		}
	})
	if err != nil {
		s.pending.Done()
		s.logger.WarnContext(ctx, "archive batch dropped", "fixtures", len(batch), "error", err)
		return false
	}
	return true
}

// Archive maps valid finished fixtures into league and fixture rows and upserts them.
// It returns the number of fixtures written.
func (s *ArchiveService) Archive(ctx context.Context, raws []match.RawFixture) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.Archive",
		attribute.Int("fixtures.input", len(raws)),
	)
	defer span.End()

	leagues, fixtures := archiveRecords(raws)
	if len(fixtures) == 0 {
		return 0, nil
	}

	if err := s.leagues.UpsertMany(ctx, leagues); err != nil {
		return 0, fmt.Errorf("upsert archived leagues: %w", err)
	}
	if err := s.fixtures.UpsertMany(ctx, fixtures); err != nil {
		return 0, fmt.Errorf("upsert archived fixtures: %w", err)
	}

	s.logger.DebugContext(ctx, "archived finished fixtures", "leagues", len(leagues), "fixtures", len(fixtures))
	return len(fixtures), nil
}

// ListByDate returns archived fixtures kicking off on the given day in the service location,
// the same timezone the provider uses to bucket fixtures by date.
func (s *ArchiveService) ListByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	if s == nil {
		return nil, NewOperationError(msgArchiveDisabled, fmt.Errorf("%w: archive backend not configured", ErrDependencyUnavailable))
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.ListByDate",
		attribute.String("date", date),
	)
	defer span.End()

	date, err := requireDate(date)
	if err != nil {
		return nil, err
	}
	from, to, err := fixture.DayRange(date, s.location)
	if err != nil {
		return nil, NewOperationError(MsgDateInvalid, fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	items, err := s.fixtures.ListByKickoffRange(ctx, from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "list archived fixtures failed", "date", date, "error", err)
		return nil, NewOperationError(msgArchiveFailed, err)
	}
	if items == nil {
		items = []fixture.Fixture{}
	}
	return items, nil
}

// Close waits for queued writes and releases the worker pool.
func (s *ArchiveService) Close() {
	if s == nil {
		return
	}
	s.pending.Wait()
	s.pool.Release()
}

func archiveRecords(raws []match.RawFixture) ([]league.League, []fixture.Fixture) {
	seenLeagues := make(map[int64]struct{})
	leagues := make([]league.League, 0)
	fixtures := make([]fixture.Fixture, 0, len(raws))

	for _, raw := range raws {
		if !raw.Valid() || raw.League.ID <= 0 || raw.Fixture.ID <= 0 {
			continue
		}
		if !fixture.IsFinishedStatus(raw.Fixture.Status.Short) {
			continue
		}
		kickoff := raw.Kickoff()
		if kickoff.IsZero() {
			continue
		}

		if _, ok := seenLeagues[raw.League.ID]; !ok {
			seenLeagues[raw.League.ID] = struct{}{}
			item := league.League{
				LeagueID: raw.League.ID,
				Name:     raw.League.Name,
				Country:  raw.League.Country,
				Logo:     raw.League.Logo,
				Season:   raw.League.Season,
			}
			if raw.League.Flag != nil {
				item.Flag = *raw.League.Flag
			}
			leagues = append(leagues, item)
		}

		fixtures = append(fixtures, fixture.Fixture{
			FixtureID: raw.Fixture.ID,
			LeagueID:  raw.League.ID,
			Season:    raw.League.Season,
			KickoffAt: kickoff,
			Status: fixture.Status{
				Long:    raw.Fixture.Status.Long,
				Short:   fixture.NormalizeStatus(raw.Fixture.Status.Short),
				Elapsed: raw.Fixture.Status.Elapsed,
			},
			Venue: fixture.Venue{
				ID:   raw.Fixture.Venue.ID,
				Name: raw.Fixture.Venue.Name,
				City: raw.Fixture.Venue.City,
			},
			HomeTeam: fixture.Team{ID: raw.Teams.Home.ID, Name: raw.Teams.Home.Name, Logo: raw.Teams.Home.Logo},
			AwayTeam: fixture.Team{ID: raw.Teams.Away.ID, Name: raw.Teams.Away.Name, Logo: raw.Teams.Away.Logo},
			Goals:    fixture.Score{Home: raw.Goals.Home, Away: raw.Goals.Away},
			Halftime: fixture.Score{Home: raw.Score.Halftime.Home, Away: raw.Score.Halftime.Away},
			Fulltime: fixture.Score{Home: raw.Score.Fulltime.Home, Away: raw.Score.Fulltime.Away},
		})
	}

	return leagues, fixtures
}
