package cache

import (
	"context"
	"errors"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/riskibarqy/livescore/internal/platform/logging"
)

const redisKeyPrefix = "livescore:"

// redisEntry is the stored form of a listing. Match timestamps are not part of the
// API JSON, so they travel alongside the groups, one slice per group.
type redisEntry struct {
	Groups   []match.LeagueGroup `json:"groups"`
	Kickoffs [][]int64           `json:"kickoffs"`
}

func newRedisEntry(groups []match.LeagueGroup) redisEntry {
	kickoffs := make([][]int64, len(groups))
	for i, group := range groups {
		kickoffs[i] = make([]int64, len(group.Matches))
		for j, item := range group.Matches {
			kickoffs[i][j] = item.Timestamp
		}
	}
	return redisEntry{Groups: groups, Kickoffs: kickoffs}
}

func (e redisEntry) restore() ([]match.LeagueGroup, bool) {
	if len(e.Kickoffs) != len(e.Groups) {
		return nil, false
	}
	for i := range e.Groups {
		if len(e.Kickoffs[i]) != len(e.Groups[i].Matches) {
			return nil, false
		}
		for j := range e.Groups[i].Matches {
			e.Groups[i].Matches[j].Timestamp = e.Kickoffs[i][j]
		}
	}
	return e.Groups, true
}

// RedisLeagueGroupCache shares aggregated league groups between instances.
// Redis failures are logged and reported as misses.
type RedisLeagueGroupCache struct {
	redis  redis.Cmdable
	logger *logging.Logger
}

func NewRedisLeagueGroupCache(client redis.Cmdable, logger *logging.Logger) *RedisLeagueGroupCache {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisLeagueGroupCache{redis: client, logger: logger}
}

func (c *RedisLeagueGroupCache) Get(ctx context.Context, key string) ([]match.LeagueGroup, bool) {
	if key == "" {
		return nil, false
	}

	data, err := c.redis.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "redis get league groups failed", "key", key, "error", err)
		}
		return nil, false
	}

	var entry redisEntry
	if err := sonic.Unmarshal(data, &entry); err != nil {
		c.logger.WarnContext(ctx, "decode cached league groups failed", "key", key, "error", err)
		return nil, false
	}
	groups, ok := entry.restore()
	if !ok {
		c.logger.WarnContext(ctx, "cached league groups are malformed", "key", key)
	}
	return groups, ok
}

func (c *RedisLeagueGroupCache) Put(ctx context.Context, key string, groups []match.LeagueGroup, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}

	data, err := sonic.Marshal(newRedisEntry(groups))
	if err != nil {
		c.logger.WarnContext(ctx, "encode league groups for cache failed", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, redisKeyPrefix+key, data, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis set league groups failed", "key", key, "error", err)
	}
}
