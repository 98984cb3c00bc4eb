package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/neuproject/sports-calendar/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByExternalID(ctx context.Context, externalAPIID string) (match.Match, bool, error) {
	var row matchTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM matches WHERE external_api_id = $1`, externalAPIID)
	if err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by external id: %w", err)
	}
	return row.toDomain(), true, nil
}

// Create inserts the row. On an external id conflict the stored row wins and
// is returned, so concurrent sources syncing the same fixture stay idempotent.
func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := sqlx.Named(`
INSERT INTO matches (
	id, external_api_id, league_id, home_team_id, away_team_id,
	home_team_name, away_team_name, match_at, status, home_score, away_score, venue, updated_at
) VALUES (
	:id, :external_api_id, :league_id, :home_team_id, :away_team_id,
	:home_team_name, :away_team_name, :match_at, :status, :home_score, :away_score, :venue, :updated_at
)
ON CONFLICT (external_api_id) DO NOTHING`, map[string]any{
		"id":              m.ID,
		"external_api_id": m.ExternalAPIID,
		"league_id":       m.LeagueID,
		"home_team_id":    nullString(m.HomeTeamID),
		"away_team_id":    nullString(m.AwayTeamID),
		"home_team_name":  m.HomeTeamName,
		"away_team_name":  m.AwayTeamName,
		"match_at":        m.MatchAt.UTC(),
		"status":          string(m.Status),
		"home_score":      m.HomeScore,
		"away_score":      m.AwayScore,
		"venue":           m.Venue,
		"updated_at":      m.UpdatedAt.UTC(),
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("bind insert match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		stored, ok, err := r.GetByExternalID(ctx, m.ExternalAPIID)
		if err != nil {
			return match.Match{}, err
		}
		if ok {
			return stored, nil
		}
	}
	return m, nil
}

func (r *MatchRepository) Update(ctx context.Context, id string, fields match.ChangedFields) (match.Match, error) {
	var row matchTableModel
	err := r.db.GetContext(ctx, &row, `
UPDATE matches
SET status = $2, home_score = $3, away_score = $4, match_at = $5, venue = $6, updated_at = now()
WHERE id = $1
RETURNING *`,
		id, string(fields.Status), fields.HomeScore, fields.AwayScore, fields.MatchAt.UTC(), fields.Venue)
	if err != nil {
		if isNotFound(err) {
			return match.Match{}, fmt.Errorf("match id=%s not found", id)
		}
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) ListBetween(ctx context.Context, from, to time.Time) ([]match.Match, error) {
	var rows []matchTableModel
	err := r.db.SelectContext(ctx, &rows, `
SELECT * FROM matches
WHERE match_at >= $1 AND match_at < $2
ORDER BY match_at ASC, id ASC`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("select matches between: %w", err)
	}
	return matchesToDomain(rows), nil
}

func (r *MatchRepository) ListFinishedSince(ctx context.Context, since time.Time, limit int) ([]match.Match, error) {
	query := `
SELECT * FROM matches
WHERE status = $1 AND match_at >= $2
ORDER BY match_at DESC, id ASC`
	args := []any{string(match.StatusFinished), since.UTC()}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select finished matches: %w", err)
	}
	return matchesToDomain(rows), nil
}

func matchesToDomain(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
