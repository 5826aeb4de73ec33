package apifootball

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/riskibarqy/livescore/internal/platform/resilience"
	"github.com/riskibarqy/livescore/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret-key-123"

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		BaseURL: server.URL,
		APIKey:  testAPIKey,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewClient(cfg)
}

func TestClient_Fixtures_SendsParamsAndDecodes(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(apiKeyHeader))
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("date"))
		assert.Equal(t, "NS", r.URL.Query().Get("status"))
		assert.Equal(t, "Africa/Lagos", r.URL.Query().Get("timezone"))
		assert.False(t, r.URL.Query().Has("live"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[],"results":1,"response":[{
			"fixture":{"id":1001,"date":"2025-03-01T15:00:00+01:00","timestamp":1740837600,
				"venue":{"id":5,"name":"Anfield","city":"Liverpool"},
				"status":{"long":"Not Started","short":"NS","elapsed":null}},
			"league":{"id":39,"name":"Premier League","country":"England","logo":"l.png","flag":"f.svg","season":2024},
			"teams":{"home":{"id":40,"name":"Liverpool","logo":"h.png","winner":null},
				"away":{"id":50,"name":"Man City","logo":"a.png","winner":null}},
			"goals":{"home":null,"away":null},
			"score":{"halftime":{"home":null,"away":null},"fulltime":{"home":null,"away":null}}
		}]}`))
	})

	got, err := client.Fixtures(context.Background(), match.FixtureQuery{Date: "2025-03-01", Status: match.StatusNotStarted})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Valid())
	assert.Equal(t, int64(1001), got[0].Fixture.ID)
	assert.Equal(t, "Anfield", got[0].Fixture.Venue.Name)
	assert.Nil(t, got[0].Fixture.Status.Elapsed)
	assert.Equal(t, "Man City", got[0].Teams.Away.Name)
}

func TestClient_MissingAPIKeyFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, func(cfg *ClientConfig) { cfg.APIKey = "  " })

	_, err := client.Fixtures(context.Background(), match.FixtureQuery{Live: match.LiveAll})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrConfig))
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_MissingResponseFieldIsUpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"get":"fixtures","results":0}`))
	})

	_, err := client.Fixtures(context.Background(), match.FixtureQuery{Live: match.LiveAll})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrUpstream))
}

func TestClient_Non2xxIsUpstreamErrorWithoutKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad key ` + testAPIKey + `"}`))
	})

	_, err := client.Lineups(context.Background(), 1001)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrUpstream))
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestClient_TokenErrorIsFlaggedUnauthorized(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":{"token":"Error/Missing application key."},"response":[]}`))
	})

	_, err := client.Fixtures(context.Background(), match.FixtureQuery{Live: match.LiveAll})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrUpstream))
	assert.True(t, errors.Is(err, usecase.ErrUnauthorized))
}

func TestClient_TimeoutIsUpstreamError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(`{"response":[]}`))
	}, func(cfg *ClientConfig) { cfg.Timeout = 50 * time.Millisecond })
	defer close(release)

	_, err := client.Odds(context.Background(), 1001)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrUpstream))
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 2; i++ {
		_, err := client.Statistics(context.Background(), int64(i+1))
		require.Error(t, err)
	}

	_, err := client.Statistics(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable))
	assert.True(t, errors.Is(err, usecase.ErrUpstream))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_HalfOpenSharedCallClosesCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		<-release
		_, _ = w.Write([]byte(`{"errors":[],"response":[]}`))
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      50 * time.Millisecond,
			HalfOpenMaxReq:   1,
		}
	})

	_, err := client.Statistics(context.Background(), 7)
	require.Error(t, err)
	require.Equal(t, resilience.CircuitStateOpen, client.breaker.State())

	time.Sleep(80 * time.Millisecond)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = client.Statistics(context.Background(), 7)
		}()
	}
	time.Sleep(30 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, resilience.CircuitStateClosed, client.breaker.State())

	for i := 0; i < 3; i++ {
		_, err := client.Statistics(context.Background(), int64(100+i))
		assert.NoError(t, err)
	}
	assert.Equal(t, resilience.CircuitStateClosed, client.breaker.State())
}

func TestClient_HeadToHeadParams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/headtohead", r.URL.Path)
		assert.Equal(t, "40-50", r.URL.Query().Get("h2h"))
		assert.Equal(t, "5", r.URL.Query().Get("last"))
		_, _ = w.Write([]byte(`{"errors":[],"response":[]}`))
	})

	got, err := client.HeadToHead(context.Background(), 40, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("dial https://x?key="+testAPIKey+" failed", testAPIKey)
	if strings.Contains(got, testAPIKey) {
		t.Fatalf("expected key to be redacted, got %q", got)
	}
	if got := sanitizeSensitiveText("plain", ""); got != "plain" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}
