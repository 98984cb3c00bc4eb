package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	// FindByNameContains returns the first league whose name contains the
	// fragment, matching how provider league codes are mapped onto seeded rows.
	FindByNameContains(ctx context.Context, fragment string) (League, bool, error)
}
