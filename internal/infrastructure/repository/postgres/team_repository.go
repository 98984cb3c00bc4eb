package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/neuproject/sports-calendar/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM teams ORDER BY league_id, name`); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}
	return teamsToDomain(rows), nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM teams WHERE league_id = $1 ORDER BY name`, leagueID); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}
	return teamsToDomain(rows), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, `SELECT * FROM teams WHERE id = $1`, teamID)
}

func (r *TeamRepository) GetByExternalID(ctx context.Context, externalAPIID string) (team.Team, bool, error) {
	if externalAPIID == "" {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx, `SELECT * FROM teams WHERE external_api_id = $1`, externalAPIID)
}

func (r *TeamRepository) GetByLeagueAndExternalID(ctx context.Context, leagueID, externalAPIID string) (team.Team, bool, error) {
	if externalAPIID == "" {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx,
		`SELECT * FROM teams WHERE league_id = $1 AND external_api_id = $2`, leagueID, externalAPIID)
}

func (r *TeamRepository) GetByExactName(ctx context.Context, leagueID, name string) (team.Team, bool, error) {
	return r.getOne(ctx,
		`SELECT * FROM teams WHERE league_id = $1 AND name = $2 ORDER BY id LIMIT 1`, leagueID, name)
}

func (r *TeamRepository) GetByNameFold(ctx context.Context, leagueID, name string) (team.Team, bool, error) {
	return r.getOne(ctx,
		`SELECT * FROM teams WHERE league_id = $1 AND lower(name) = lower($2) ORDER BY id LIMIT 1`, leagueID, name)
}

func (r *TeamRepository) GetByNameContains(ctx context.Context, leagueID, fragment string) (team.Team, bool, error) {
	if fragment == "" {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx,
		`SELECT * FROM teams WHERE league_id = $1 AND name ILIKE '%' || $2 || '%' ESCAPE '\' ORDER BY id LIMIT 1`,
		leagueID, escapeLike(fragment))
}

// likeEscaper neutralizes LIKE metacharacters in provider team names; a
// stray "%" must not turn the fragment into a match-all pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(fragment string) string {
	return likeEscaper.Replace(fragment)
}

func (r *TeamRepository) getOne(ctx context.Context, query string, args ...any) (team.Team, bool, error) {
	var row teamTableModel
	err := r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}
	return row.toDomain(), true, nil
}

func teamsToDomain(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
