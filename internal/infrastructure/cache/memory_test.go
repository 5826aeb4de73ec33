package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLeagueGroupCache_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewMemoryLeagueGroupCache(nil)
	groups := []match.LeagueGroup{{League: match.GroupLeague{ID: 39, Name: "Premier League", Country: "England"}}}

	_, ok := c.Get(context.Background(), "live-matches")
	assert.False(t, ok)

	c.Put(context.Background(), "live-matches", groups, time.Minute)
	got, ok := c.Get(context.Background(), "live-matches")
	require.True(t, ok)
	assert.Equal(t, groups, got)
}
