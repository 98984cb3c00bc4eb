package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/neuproject/sports-calendar/internal/domain/follow"
)

type FollowRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) ListByMember(ctx context.Context, memberUID string) ([]follow.Follow, error) {
	var rows []followTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM follows WHERE member_uid = $1 ORDER BY created_at`, memberUID)
	if err != nil {
		return nil, fmt.Errorf("select follows by member: %w", err)
	}

	out := make([]follow.Follow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FollowRepository) Exists(ctx context.Context, memberUID, teamID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(1) FROM follows WHERE member_uid = $1 AND team_id = $2`, memberUID, teamID)
	if err != nil {
		return false, fmt.Errorf("count follows: %w", err)
	}
	return count > 0, nil
}

func (r *FollowRepository) Create(ctx context.Context, f follow.Follow) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO follows (member_uid, team_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (member_uid, team_id) DO NOTHING`,
		f.MemberUID, f.TeamID, f.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert follow: %w", err)
	}
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, memberUID, teamID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE member_uid = $1 AND team_id = $2`, memberUID, teamID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}
