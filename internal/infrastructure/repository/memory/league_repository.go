package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/neuproject/sports-calendar/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
}

func NewLeagueRepository(items []league.League) *LeagueRepository {
	out := make([]league.League, len(items))
	copy(out, items)
	return &LeagueRepository{items: out}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == leagueID {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) FindByNameContains(_ context.Context, fragment string) (league.League, bool, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return league.League{}, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if strings.Contains(item.Name, fragment) {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}
