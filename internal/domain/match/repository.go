package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByExternalID(ctx context.Context, externalAPIID string) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
	// Update persists only the mutable fields of the row identified by id.
	Update(ctx context.Context, id string, fields ChangedFields) (Match, error)
	// ListBetween returns matches with from <= match_at < to, ordered by
	// match_at ascending.
	ListBetween(ctx context.Context, from, to time.Time) ([]Match, error)
	// ListFinishedSince returns finished matches with match_at >= since,
	// ordered by match_at descending. A limit above zero caps the result;
	// zero or less returns every row in the window.
	ListFinishedSince(ctx context.Context, since time.Time, limit int) ([]Match, error)
}
