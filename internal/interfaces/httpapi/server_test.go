package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/infrastructure/cache"
	"github.com/riskibarqy/livescore/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/livescore/internal/mocks/domain/match"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/riskibarqy/livescore/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testFixture(id, leagueID int64, league, country string, kickoff time.Time) match.RawFixture {
	return match.RawFixture{
		Fixture: &match.FixtureInfo{
			ID:        id,
			Date:      kickoff.Format(time.RFC3339),
			Timestamp: kickoff.Unix(),
			Status:    match.Status{Long: "Match Finished", Short: match.StatusFullTime},
		},
		League: &match.LeagueInfo{ID: leagueID, Name: league, Country: country, Season: 2024},
		Teams: &match.Teams{
			Home: &match.Team{ID: 40, Name: "Liverpool"},
			Away: &match.Team{ID: 50, Name: "Man City"},
		},
	}
}

func newTestRouter(t *testing.T, provider match.Provider, archive *usecase.ArchiveService) http.Handler {
	t.Helper()

	service := usecase.NewMatchService(
		provider,
		cache.NewMemoryLeagueGroupCache(nil),
		nil,
		usecase.MatchServiceConfig{LiveCacheTTL: time.Minute},
		logging.NewNop(),
	)
	return NewRouter(NewHandler(service, archive, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_RootAndHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, matchmock.NewProvider(t), nil)

	rec := serve(t, router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to 24FBLIVESCORE API", rec.Body.String())

	rec = serve(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	rec = serve(t, router, "/matches/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_LiveMatchesFiltersGroups(t *testing.T) {
	t.Parallel()

	provider := matchmock.NewProvider(t)
	kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	provider.
		On("Fixtures", mock.Anything, match.FixtureQuery{Live: match.LiveAll}).
		Return([]match.RawFixture{
			testFixture(1, 39, "Premier League", "England", kickoff),
			testFixture(2, 88, "Eredivisie", "Netherlands", kickoff),
		}, nil).
		Once()

	router := newTestRouter(t, provider, nil)
	rec := serve(t, router, "/matches/live?country=nether")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	league := data[0].(map[string]any)["league"].(map[string]any)
	assert.Equal(t, "Eredivisie", league["name"])
}

func TestRouter_ScheduledMatchesEnvelope(t *testing.T) {
	t.Parallel()

	provider := matchmock.NewProvider(t)
	kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	provider.
		On("Fixtures", mock.Anything, match.FixtureQuery{Date: "2025-03-01", Status: match.StatusNotStarted}).
		Return([]match.RawFixture{testFixture(1, 39, "Premier League", "England", kickoff)}, nil).
		Once()

	router := newTestRouter(t, provider, nil)
	rec := serve(t, router, "/matches/scheduled-matches?date=2025-03-01")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "2025-03-01", body["date"])
	assert.EqualValues(t, 1, body["totalLeagues"])
}

func TestRouter_DateValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, matchmock.NewProvider(t), nil)

	for _, target := range []string{
		"/matches/scheduled-matches",
		"/matches/all-matches",
		"/matches/finished",
		"/matches/archive",
	} {
		rec := serve(t, router, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, usecase.MsgDateRequired, decodeBody(t, rec)["error"], target)
	}

	rec := serve(t, router, "/matches/all-matches?date=01-03-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.MsgDateInvalid, decodeBody(t, rec)["error"])

	rec = serve(t, router, "/matches/live?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_MatchDetails(t *testing.T) {
	t.Parallel()

	t.Run("missing fixture id", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestRouter(t, matchmock.NewProvider(t), nil), "/matches/match-details")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, usecase.MsgFixtureRequired, decodeBody(t, rec)["error"])
	})

	t.Run("non numeric fixture id", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestRouter(t, matchmock.NewProvider(t), nil), "/matches/match-details?fixtureId=abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, usecase.MsgFixtureIDInvalid, decodeBody(t, rec)["error"])
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		provider := matchmock.NewProvider(t)
		provider.On("Fixtures", mock.Anything, match.FixtureQuery{ID: 7}).Return([]match.RawFixture{}, nil).Once()
		provider.On("Lineups", mock.Anything, int64(7)).Return(nil, errors.New("boom")).Once()
		provider.On("Statistics", mock.Anything, int64(7)).Return([]match.TeamStatistics{}, nil).Once()
		provider.On("Odds", mock.Anything, int64(7)).Return([]match.Odds{}, nil).Once()

		rec := serve(t, newTestRouter(t, provider, nil), "/matches/match-details?fixtureId=7")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Fixture not found", decodeBody(t, rec)["error"])
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
		provider := matchmock.NewProvider(t)
		provider.On("Fixtures", mock.Anything, match.FixtureQuery{ID: 7}).
			Return([]match.RawFixture{testFixture(7, 39, "Premier League", "England", kickoff)}, nil).Once()
		provider.On("Lineups", mock.Anything, int64(7)).Return([]match.Lineup{}, nil).Once()
		provider.On("Statistics", mock.Anything, int64(7)).Return([]match.TeamStatistics{}, nil).Once()
		provider.On("Odds", mock.Anything, int64(7)).Return([]match.Odds{}, nil).Once()
		provider.On("HeadToHead", mock.Anything, int64(40), int64(50), 5).Return([]match.RawFixture{}, nil).Once()

		rec := serve(t, newTestRouter(t, provider, nil), "/matches/match-details?fixtureId=7")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Nil(t, data["odds"])
		assert.Equal(t, []any{}, data["h2h"])
	})
}

func TestRouter_UpstreamFailureMessage(t *testing.T) {
	t.Parallel()

	provider := matchmock.NewProvider(t)
	provider.
		On("Fixtures", mock.Anything, match.FixtureQuery{Date: "2025-03-01"}).
		Return(nil, usecase.ErrUpstream).
		Once()

	rec := serve(t, newTestRouter(t, provider, nil), "/matches/all-matches?date=2025-03-01")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch all matches.", decodeBody(t, rec)["error"])
}

func TestRouter_Archive(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestRouter(t, matchmock.NewProvider(t), nil), "/matches/archive?date=2025-03-01")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("lists archived fixtures", func(t *testing.T) {
		t.Parallel()

		archive, err := usecase.NewArchiveService(memory.NewLeagueRepository(), memory.NewFixtureRepository(), 1, nil, logging.NewNop())
		require.NoError(t, err)
		t.Cleanup(archive.Close)

		kickoff := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
		_, err = archive.Archive(context.Background(), []match.RawFixture{testFixture(1, 39, "Premier League", "England", kickoff)})
		require.NoError(t, err)

		rec := serve(t, newTestRouter(t, matchmock.NewProvider(t), archive), "/matches/archive?date=2025-03-01")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.EqualValues(t, 1, body["total"])
		item := body["data"].([]any)[0].(map[string]any)
		assert.EqualValues(t, 1, item["fixtureId"])
		assert.Equal(t, "2025-03-01T15:00:00Z", item["kickoffAt"])
	})
}
