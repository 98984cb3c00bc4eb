package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/neuproject/sports-calendar/internal/domain/league"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM leagues ORDER BY name`); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	var row leagueTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM leagues WHERE id = $1`, leagueID)
	if err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueRepository) FindByNameContains(ctx context.Context, fragment string) (league.League, bool, error) {
	var row leagueTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM leagues WHERE name LIKE '%' || $1 || '%' ORDER BY id LIMIT 1`, fragment)
	if err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league by name fragment: %w", err)
	}
	return row.toDomain(), true, nil
}
