package memory

import (
	"context"
	"sync"

	"github.com/neuproject/sports-calendar/internal/domain/follow"
)

type FollowRepository struct {
	mu    sync.RWMutex
	items []follow.Follow
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{}
}

func (r *FollowRepository) ListByMember(_ context.Context, memberUID string) ([]follow.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]follow.Follow, 0, 8)
	for _, item := range r.items {
		if item.MemberUID == memberUID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *FollowRepository) Exists(_ context.Context, memberUID, teamID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.MemberUID == memberUID && item.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FollowRepository) Create(_ context.Context, f follow.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.MemberUID == f.MemberUID && item.TeamID == f.TeamID {
			return nil
		}
	}
	r.items = append(r.items, f)
	return nil
}

func (r *FollowRepository) Delete(_ context.Context, memberUID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, item := range r.items {
		if item.MemberUID == memberUID && item.TeamID == teamID {
			r.items = append(r.items[:idx], r.items[idx+1:]...)
			return nil
		}
	}
	return nil
}
