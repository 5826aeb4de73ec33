package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/livescore/external/apifootball"
	"github.com/riskibarqy/livescore/internal/config"
	"github.com/riskibarqy/livescore/internal/domain/fixture"
	"github.com/riskibarqy/livescore/internal/domain/league"
	"github.com/riskibarqy/livescore/internal/infrastructure/cache"
	"github.com/riskibarqy/livescore/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/livescore/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/livescore/internal/interfaces/httpapi"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/riskibarqy/livescore/internal/usecase"
)

const dependencyPingTimeout = 5 * time.Second

// NewHTTPServer builds the API server and every dependency behind it. The returned
// cleanup releases pools and connections and must run after the server has stopped.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if cfg.APIFootballKey == "" {
		logger.Warn("API_FOOTBALL_KEY is not set; match endpoints will fail until it is configured")
	}
	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:        cfg.APIFootballBaseURL,
		APIKey:         cfg.APIFootballKey,
		Timezone:       cfg.APIFootballTimezone,
		Timeout:        cfg.APIFootballTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.APIFootballCircuit,
	})

	groupCache, closeCache, err := newLeagueGroupCache(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	cleanups = append(cleanups, closeCache)

	archive, closeArchive, err := newArchiveService(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	cleanups = append(cleanups, closeArchive)

	// A nil *ArchiveService stored in the interface would not compare equal to nil.
	var archiver usecase.FixtureArchiver
	if archive != nil {
		archiver = archive
	}

	matchService := usecase.NewMatchService(provider, groupCache, archiver, usecase.MatchServiceConfig{
		FeaturedLeagueIDs: cfg.FeaturedLeagueIDs,
		TopLeagues:        cfg.TopLeagues,
		LiveCacheTTL:      cfg.LiveCacheTTL,
	}, logger)

	handler := httpapi.NewHandler(matchService, archive, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newLeagueGroupCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.LeagueGroupCache, func(), error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		logger.Info("live cache backend", "backend", config.CacheBackendMemory, "ttl", cfg.LiveCacheTTL)
		return cache.NewMemoryLeagueGroupCache(nil), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("live cache backend", "backend", config.CacheBackendRedis, "addr", opts.Addr, "ttl", cfg.LiveCacheTTL)
	return cache.NewRedisLeagueGroupCache(client, logger), func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis client failed", "error", err)
		}
	}, nil
}

func newArchiveService(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.ArchiveService, func(), error) {
	var (
		leagues  league.Repository
		fixtures fixture.Repository
		closeDB  = func() {}
	)

	switch cfg.ArchiveBackend {
	case config.ArchiveBackendMemory:
		leagues = memory.NewLeagueRepository()
		fixtures = memory.NewFixtureRepository()
	case config.ArchiveBackendPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		leagues = postgres.NewLeagueRepository(db)
		fixtures = postgres.NewFixtureRepository(db)
		closeDB = func() {
			if err := db.Close(); err != nil {
				logger.Warn("close archive database failed", "error", err)
			}
		}
	default:
		logger.Info("match archive disabled", "reason", "ARCHIVE_BACKEND not set")
		return nil, func() {}, nil
	}

	archive, err := usecase.NewArchiveService(leagues, fixtures, cfg.ArchiveWorkers, cfg.APIFootballLocation, logger)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	logger.Info("match archive enabled", "backend", cfg.ArchiveBackend, "workers", cfg.ArchiveWorkers)
	return archive, func() {
		archive.Close()
		closeDB()
	}, nil
}
