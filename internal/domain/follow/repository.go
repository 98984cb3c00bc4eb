package follow

import "context"

// Repository describes follow persistence needs from use cases.
type Repository interface {
	ListByMember(ctx context.Context, memberUID string) ([]Follow, error)
	Exists(ctx context.Context, memberUID, teamID string) (bool, error)
	Create(ctx context.Context, f Follow) error
	Delete(ctx context.Context, memberUID, teamID string) error
}
