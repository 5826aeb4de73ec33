package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/match"
	basecache "github.com/riskibarqy/livescore/internal/platform/cache"
)

// MemoryLeagueGroupCache keeps aggregated league groups in the process.
type MemoryLeagueGroupCache struct {
	store *basecache.Store
}

func NewMemoryLeagueGroupCache(store *basecache.Store) *MemoryLeagueGroupCache {
	if store == nil {
		store = basecache.NewStore()
	}
	return &MemoryLeagueGroupCache{store: store}
}

func (c *MemoryLeagueGroupCache) Get(ctx context.Context, key string) ([]match.LeagueGroup, bool) {
	v, ok := c.store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	groups, ok := v.([]match.LeagueGroup)
	return groups, ok
}

func (c *MemoryLeagueGroupCache) Put(ctx context.Context, key string, groups []match.LeagueGroup, ttl time.Duration) {
	c.store.Put(ctx, key, groups, ttl)
}
