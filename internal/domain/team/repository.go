package team

import "context"

// Repository describes team persistence needs from use cases.
//
// The lookup methods mirror the resolver cascade: each one answers a single
// matching strategy so the cascade order stays in the use case, not in SQL.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByExternalID(ctx context.Context, externalAPIID string) (Team, bool, error)
	GetByLeagueAndExternalID(ctx context.Context, leagueID, externalAPIID string) (Team, bool, error)
	GetByExactName(ctx context.Context, leagueID, name string) (Team, bool, error)
	GetByNameFold(ctx context.Context, leagueID, name string) (Team, bool, error)
	GetByNameContains(ctx context.Context, leagueID, fragment string) (Team, bool, error)
}
