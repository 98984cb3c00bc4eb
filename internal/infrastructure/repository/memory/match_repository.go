package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/neuproject/sports-calendar/internal/domain/match"
)

var errMatchNotFound = errors.New("match not found")

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
	now   func() time.Time
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{now: time.Now}
}

func (r *MatchRepository) GetByExternalID(_ context.Context, externalAPIID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ExternalAPIID == externalAPIID {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

// Create stores the row; when the external id already exists the stored row
// wins, matching the SQL conflict guard, so two sources racing on the same
// fixture stay idempotent.
func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ExternalAPIID == m.ExternalAPIID {
			return item, nil
		}
	}

	r.items = append(r.items, m)
	return m, nil
}

func (r *MatchRepository) Update(_ context.Context, id string, fields match.ChangedFields) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID != id {
			continue
		}
		r.items[idx].Status = fields.Status
		r.items[idx].HomeScore = fields.HomeScore
		r.items[idx].AwayScore = fields.AwayScore
		r.items[idx].MatchAt = fields.MatchAt
		r.items[idx].Venue = fields.Venue
		r.items[idx].UpdatedAt = r.now().UTC()
		return r.items[idx], nil
	}
	return match.Match{}, errMatchNotFound
}

func (r *MatchRepository) ListBetween(_ context.Context, from, to time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, 64)
	for _, item := range r.items {
		if item.MatchAt.Before(from) || !item.MatchAt.Before(to) {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MatchAt.Equal(out[j].MatchAt) {
			return out[i].MatchAt.Before(out[j].MatchAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) ListFinishedSince(_ context.Context, since time.Time, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, 32)
	for _, item := range r.items {
		if item.Status != match.StatusFinished || item.MatchAt.Before(since) {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MatchAt.Equal(out[j].MatchAt) {
			return out[i].MatchAt.After(out[j].MatchAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
