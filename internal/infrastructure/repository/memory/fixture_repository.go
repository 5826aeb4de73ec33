package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures map[int64]fixture.Fixture
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{fixtures: make(map[int64]fixture.Fixture)}
}

func (r *FixtureRepository) UpsertMany(_ context.Context, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range fixtures {
		if err := item.Validate(); err != nil {
			return err
		}
		r.fixtures[item.FixtureID] = item
	}
	return nil
}

func (r *FixtureRepository) ListByKickoffRange(_ context.Context, from, to time.Time) ([]fixture.Fixture, error) {
	r.mu.RLock()
	out := make([]fixture.Fixture, 0)
	for _, item := range r.fixtures {
		if item.KickoffAt.Before(from) || !item.KickoffAt.Before(to) {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].FixtureID < out[j].FixtureID
	})
	return out, nil
}
