package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	LiveMatchesCacheKey = "live-matches"
	dateLayout          = "2006-01-02"

	msgAuthFailed       = "Authentication failed: Check your API key"
	msgLiveFailed       = "Failed to fetch live matches. Please try again later."
	msgScheduledFailed  = "Failed to fetch scheduled matches. Please try again later."
	msgAllFailed        = "Failed to fetch all matches."
	msgFinishedFailed   = "Failed to fetch finished matches."
	msgDetailsFailed    = "Failed to fetch match details"
	msgFixtureNotFound  = "Fixture not found"
	MsgDateRequired     = "date query parameter is required (YYYY-MM-DD)"
	MsgDateInvalid      = "date must be in YYYY-MM-DD format"
	MsgFixtureRequired  = "fixtureId query parameter is required"
	MsgFixtureIDInvalid = "fixtureId must be numeric"
)

// LeagueGroupCache holds aggregated listings for a bounded time.
type LeagueGroupCache interface {
	Get(ctx context.Context, key string) ([]match.LeagueGroup, bool)
	Put(ctx context.Context, key string, groups []match.LeagueGroup, ttl time.Duration)
}

// FixtureArchiver accepts finished fixtures for background persistence.
type FixtureArchiver interface {
	Enqueue(ctx context.Context, fixtures []match.RawFixture) bool
}

type MatchServiceConfig struct {
	FeaturedLeagueIDs []int64
	TopLeagues        []string
	LiveCacheTTL      time.Duration
}

type MatchService struct {
	provider match.Provider
	cache    LeagueGroupCache
	archiver FixtureArchiver
	cfg      MatchServiceConfig
	featured match.Ordering
	top      match.Ordering
	logger   *logging.Logger
}

func NewMatchService(
	provider match.Provider,
	cache LeagueGroupCache,
	archiver FixtureArchiver,
	cfg MatchServiceConfig,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.FeaturedLeagueIDs == nil {
		cfg.FeaturedLeagueIDs = match.DefaultFeaturedLeagueIDs
	}
	if cfg.TopLeagues == nil {
		cfg.TopLeagues = match.DefaultTopLeagues
	}

	return &MatchService{
		provider: provider,
		cache:    cache,
		archiver: archiver,
		cfg:      cfg,
		featured: match.FeaturedOrdering(cfg.FeaturedLeagueIDs),
		top:      match.TopLeagueOrdering(cfg.TopLeagues),
		logger:   logger,
	}
}

// LiveMatches returns in-play fixtures grouped by league. The date is optional
// and only validated; the cached result does not vary by date.
func (s *MatchService) LiveMatches(ctx context.Context, date string) ([]match.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.LiveMatches")
	defer span.End()

	if strings.TrimSpace(date) != "" {
		if _, err := normalizeDate(date); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		if groups, ok := s.cache.Get(ctx, LiveMatchesCacheKey); ok {
			return groups, nil
		}
	}

	fixtures, err := s.provider.Fixtures(ctx, match.FixtureQuery{Live: match.LiveAll})
	if err != nil {
		return nil, s.fail(ctx, "live", msgLiveFailed, err)
	}

	groups := match.Group(fixtures, s.featured)
	if s.cache != nil && s.cfg.LiveCacheTTL > 0 {
		s.cache.Put(ctx, LiveMatchesCacheKey, groups, s.cfg.LiveCacheTTL)
	}
	return groups, nil
}

func (s *MatchService) ScheduledMatches(ctx context.Context, date string) ([]match.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ScheduledMatches", attribute.String("date", date))
	defer span.End()

	day, err := requireDate(date)
	if err != nil {
		return nil, err
	}

	fixtures, err := s.provider.Fixtures(ctx, match.FixtureQuery{Date: day, Status: match.StatusNotStarted})
	if err != nil {
		return nil, s.fail(ctx, "scheduled", msgScheduledFailed, err)
	}
	return match.Group(fixtures, s.featured), nil
}

func (s *MatchService) AllMatches(ctx context.Context, date string) ([]match.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AllMatches", attribute.String("date", date))
	defer span.End()

	day, err := requireDate(date)
	if err != nil {
		return nil, err
	}

	fixtures, err := s.provider.Fixtures(ctx, match.FixtureQuery{Date: day})
	if err != nil {
		return nil, s.fail(ctx, "all", msgAllFailed, err)
	}
	return match.Group(fixtures, s.top), nil
}

// FinishedMatches queries every terminal status concurrently and fails if any call fails.
func (s *MatchService) FinishedMatches(ctx context.Context, date string) ([]match.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.FinishedMatches", attribute.String("date", date))
	defer span.End()

	day, err := requireDate(date)
	if err != nil {
		return nil, err
	}

	results := make([][]match.RawFixture, len(match.FinishedStatuses))
	p := pool.New().WithErrors().WithContext(ctx)
	for i, status := range match.FinishedStatuses {
		p.Go(func(ctx context.Context) error {
			items, err := s.provider.Fixtures(ctx, match.FixtureQuery{Date: day, Status: status})
			if err != nil {
				return fmt.Errorf("fetch %s fixtures: %w", status, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, s.fail(ctx, "finished", msgFinishedFailed, err)
	}

	total := 0
	for _, items := range results {
		total += len(items)
	}
	combined := make([]match.RawFixture, 0, total)
	for _, items := range results {
		combined = append(combined, items...)
	}

	if s.archiver != nil && len(combined) > 0 {
		s.archiver.Enqueue(ctx, combined)
	}

	return match.Group(combined, s.top), nil
}

// MatchDetails fetches the overview and its sub-resources concurrently, then
// the head-to-head history of the two teams.
func (s *MatchService) MatchDetails(ctx context.Context, fixtureID string) (match.MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.MatchDetails", attribute.String("fixture_id", fixtureID))
	defer span.End()

	id, err := parseFixtureID(fixtureID)
	if err != nil {
		return match.MatchDetail{}, err
	}

	var (
		overview   []match.RawFixture
		lineups    []match.Lineup
		statistics []match.TeamStatistics
		odds       []match.Odds
		errs       [4]error
	)

	var wg conc.WaitGroup
	wg.Go(func() { overview, errs[0] = s.provider.Fixtures(ctx, match.FixtureQuery{ID: id}) })
	wg.Go(func() { lineups, errs[1] = s.provider.Lineups(ctx, id) })
	wg.Go(func() { statistics, errs[2] = s.provider.Statistics(ctx, id) })
	wg.Go(func() { odds, errs[3] = s.provider.Odds(ctx, id) })
	wg.Wait()

	if errs[0] != nil {
		return match.MatchDetail{}, s.fail(ctx, "details", msgDetailsFailed, fmt.Errorf("fetch fixture overview: %w", errs[0]))
	}
	if len(overview) == 0 || overview[0].Fixture == nil {
		return match.MatchDetail{}, NewOperationError(msgFixtureNotFound, fmt.Errorf("%w: fixture=%d", ErrNotFound, id))
	}
	if err := errors.Join(errs[1:]...); err != nil {
		return match.MatchDetail{}, s.fail(ctx, "details", msgDetailsFailed, err)
	}

	head := overview[0]
	if !head.Valid() {
		return match.MatchDetail{}, s.fail(ctx, "details", msgDetailsFailed, fmt.Errorf("%w: fixture=%d overview is incomplete", ErrUpstream, id))
	}

	h2h, err := s.provider.HeadToHead(ctx, head.Teams.Home.ID, head.Teams.Away.ID, match.DefaultHeadToHeadLimit)
	if err != nil {
		return match.MatchDetail{}, s.fail(ctx, "details", msgDetailsFailed, fmt.Errorf("fetch head to head: %w", err))
	}

	return buildMatchDetail(head, lineups, statistics, odds, h2h), nil
}

func buildMatchDetail(
	head match.RawFixture,
	lineups []match.Lineup,
	statistics []match.TeamStatistics,
	odds []match.Odds,
	h2h []match.RawFixture,
) match.MatchDetail {
	events := head.Events
	if events == nil {
		events = []match.Event{}
	}
	if lineups == nil {
		lineups = []match.Lineup{}
	}
	if statistics == nil {
		statistics = []match.TeamStatistics{}
	}
	if h2h == nil {
		h2h = []match.RawFixture{}
	}

	var firstOdds *match.Odds
	if len(odds) > 0 {
		firstOdds = &odds[0]
	}

	return match.MatchDetail{
		Fixture: match.DetailFixture{
			ID:     head.Fixture.ID,
			Date:   head.Fixture.Date,
			Venue:  head.Fixture.Venue,
			Status: head.Fixture.Status,
			Teams:  *head.Teams,
			Goals:  head.Goals,
			Score:  head.Score,
			League: *head.League,
			Events: events,
		},
		Lineups:    lineups,
		Statistics: statistics,
		Odds:       firstOdds,
		H2H:        h2h,
	}
}

// fail logs the internal cause and returns the client-safe error.
func (s *MatchService) fail(ctx context.Context, operation, message string, err error) error {
	if errors.Is(err, ErrUnauthorized) {
		message = msgAuthFailed
	}
	s.logger.ErrorContext(ctx, "match query failed", "operation", operation, "error", err)
	return NewOperationError(message, err)
}

func requireDate(date string) (string, error) {
	if strings.TrimSpace(date) == "" {
		return "", NewOperationError(MsgDateRequired, fmt.Errorf("%w: date is required", ErrInvalidInput))
	}
	return normalizeDate(date)
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", NewOperationError(MsgDateInvalid, fmt.Errorf("%w: date=%q", ErrInvalidInput, date))
	}
	return date, nil
}

func parseFixtureID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewOperationError(MsgFixtureRequired, fmt.Errorf("%w: fixture id is required", ErrInvalidInput))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewOperationError(MsgFixtureIDInvalid, fmt.Errorf("%w: fixture id=%q", ErrInvalidInput, raw))
	}
	return id, nil
}
