package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/livescore/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues map[int64]league.League
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{leagues: make(map[int64]league.League)}
}

func (r *LeagueRepository) UpsertMany(_ context.Context, leagues []league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range leagues {
		if err := item.Validate(); err != nil {
			return err
		}
		r.leagues[item.LeagueID] = item
	}
	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.leagues[leagueID]
	return item, ok, nil
}
