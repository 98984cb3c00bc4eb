package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/neuproject/sports-calendar/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
}

func NewTeamRepository(items []team.Team) *TeamRepository {
	out := make([]team.Team, len(items))
	copy(out, items)
	return &TeamRepository{items: out}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, 16)
	for _, item := range r.items {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByExternalID(_ context.Context, externalAPIID string) (team.Team, bool, error) {
	if externalAPIID == "" {
		return team.Team{}, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ExternalAPIID == externalAPIID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByLeagueAndExternalID(_ context.Context, leagueID, externalAPIID string) (team.Team, bool, error) {
	if externalAPIID == "" {
		return team.Team{}, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.LeagueID == leagueID && item.ExternalAPIID == externalAPIID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByExactName(_ context.Context, leagueID, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.LeagueID == leagueID && item.Name == name {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByNameFold(_ context.Context, leagueID, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.LeagueID == leagueID && strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByNameContains(_ context.Context, leagueID, fragment string) (team.Team, bool, error) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return team.Team{}, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.LeagueID == leagueID && strings.Contains(strings.ToLower(item.Name), fragment) {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}
