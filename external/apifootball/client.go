package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/riskibarqy/livescore/internal/platform/resilience"
	"github.com/riskibarqy/livescore/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL  = "https://v3.football.api-sports.io"
	defaultTimezone = "Africa/Lagos"
	defaultTimeout  = 10 * time.Second
	apiKeyHeader    = "x-apisports-key"
	maxBodyBytes    = 8 << 20
)

var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timezone       string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v3 REST API. It never retries; a failed call
// is returned to the caller as usecase.ErrUpstream.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	apiKey     string
	timezone   string
	timeout    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Group[[]byte]
}

var _ match.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "livescore",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodyBytes,
			MaxConnsPerHost:     64,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timezone := strings.TrimSpace(cfg.Timezone)
	if timezone == "" {
		timezone = defaultTimezone
	}

	breaker := resilience.NewCircuitBreakerFromConfig(resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker))
	breaker.OnTransition(func(from, to resilience.CircuitState) {
		logger.Warn("api-football circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timezone:   timezone,
		timeout:    timeout,
		logger:     logger,
		breaker:    breaker,
	}
}

func (c *Client) Fixtures(ctx context.Context, query match.FixtureQuery) ([]match.RawFixture, error) {
	params := url.Values{}
	if query.ID > 0 {
		params.Set("id", strconv.FormatInt(query.ID, 10))
	}
	if v := strings.TrimSpace(query.Date); v != "" {
		params.Set("date", v)
	}
	if v := strings.TrimSpace(query.Status); v != "" {
		params.Set("status", v)
	}
	if v := strings.TrimSpace(query.Live); v != "" {
		params.Set("live", v)
	}
	params.Set("timezone", c.timezone)

	return fetch[match.RawFixture](ctx, c, "/fixtures", params)
}

func (c *Client) Lineups(ctx context.Context, fixtureID int64) ([]match.Lineup, error) {
	return fetch[match.Lineup](ctx, c, "/fixtures/lineups", fixtureParam(fixtureID))
}

func (c *Client) Statistics(ctx context.Context, fixtureID int64) ([]match.TeamStatistics, error) {
	return fetch[match.TeamStatistics](ctx, c, "/fixtures/statistics", fixtureParam(fixtureID))
}

func (c *Client) Odds(ctx context.Context, fixtureID int64) ([]match.Odds, error) {
	return fetch[match.Odds](ctx, c, "/odds", fixtureParam(fixtureID))
}

func (c *Client) HeadToHead(ctx context.Context, homeTeamID, awayTeamID int64, last int) ([]match.RawFixture, error) {
	if last <= 0 {
		last = match.DefaultHeadToHeadLimit
	}
	params := url.Values{}
	params.Set("h2h", fmt.Sprintf("%d-%d", homeTeamID, awayTeamID))
	params.Set("last", strconv.Itoa(last))

	return fetch[match.RawFixture](ctx, c, "/fixtures/headtohead", params)
}

func fixtureParam(fixtureID int64) url.Values {
	params := url.Values{}
	params.Set("fixture", strconv.FormatInt(fixtureID, 10))
	return params
}

type envelope[T any] struct {
	Response *[]T `json:"response"`
	Errors   any  `json:"errors"`
}

func fetch[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	raw, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var payload envelope[T]
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode %s payload: %v", usecase.ErrUpstream, path, err)
	}
	if err := providerErrors(payload.Errors, raw); err != nil {
		c.logger.WarnContext(ctx, "api-football reported errors", "path", path, "error", err)
		return nil, err
	}
	if payload.Response == nil {
		return nil, fmt.Errorf("%w: %s payload missing response field", usecase.ErrUpstream, path)
	}

	return *payload.Response, nil
}

// get returns the raw 2xx body of path. Identical concurrent requests share one call.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API_FOOTBALL_KEY is not configured", usecase.ErrConfig)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
	}
	fullURL := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// The breaker is consulted once per upstream call, not once per joined caller.
	raw, err, _ := c.flight.Do(ctx, fullURL, func() ([]byte, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %w: football data provider is temporarily unavailable", usecase.ErrUpstream, usecase.ErrDependencyUnavailable)
		}
		body, reqErr := c.execute(ctx, fullURL)
		c.breaker.Record(circuitFailure(reqErr))
		return body, reqErr
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && stderrors.Is(err, ctxErr) {
			return nil, fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
		}
		if !stderrors.Is(err, usecase.ErrDependencyUnavailable) {
			c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", sanitizeSensitiveText(err.Error(), c.apiKey))
		}
		return nil, err
	}

	return raw, nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	started := time.Now()
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		if stderrors.Is(err, fasthttp.ErrTimeout) {
			return nil, crerr.Mark(
				fmt.Errorf("%w: request timed out after %s", usecase.ErrUpstream, time.Since(started).Round(time.Millisecond)),
				errTransient,
			)
		}
		return nil, crerr.Mark(
			fmt.Errorf("%w: send request: %s", usecase.ErrUpstream, sanitizeSensitiveText(err.Error(), c.apiKey)),
			errTransient,
		)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return body, nil
	}

	statusErr := fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUpstream, status, abbreviateBody(sanitizeSensitiveText(string(body), c.apiKey)))
	if hasTokenError(body) {
		statusErr = fmt.Errorf("%w: %w", usecase.ErrUnauthorized, statusErr)
	}
	if isTransientStatus(status) {
		return nil, crerr.Mark(statusErr, errTransient)
	}
	return nil, statusErr
}

// providerErrors turns a non-empty "errors" object into an upstream error.
// The provider sends an empty array when there is nothing to report.
func providerErrors(errs any, raw []byte) error {
	fields, ok := errs.(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	err := fmt.Errorf("%w: provider errors on %s", usecase.ErrUpstream, strings.Join(keys, ","))
	if hasTokenError(raw) {
		return fmt.Errorf("%w: %w", usecase.ErrUnauthorized, err)
	}
	return err
}

func hasTokenError(body []byte) bool {
	if len(body) == 0 {
		return false
	}
	_, err := sonic.Get(body, "errors", "token")
	return err == nil
}

func circuitFailure(err error) error {
	if err != nil && crerr.Is(err, errTransient) {
		return err
	}
	return nil
}

func isTransientStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" || apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, apiKey, "REDACTED")
}

func abbreviateBody(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
