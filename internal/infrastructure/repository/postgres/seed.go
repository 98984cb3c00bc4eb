package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/neuproject/sports-calendar/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the static league and team catalog into an empty
// database. Populated databases are left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		query, args, err := sqlx.Named(`
INSERT INTO leagues (id, name, category)
VALUES (:id, :name, :category)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":       l.ID,
			"name":     l.Name,
			"category": l.Category,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		query, args, err := sqlx.Named(`
INSERT INTO teams (id, league_id, name, external_api_id, primary_color, secondary_color, logo_url)
VALUES (:id, :league_id, :name, :external_api_id, :primary_color, :secondary_color, :logo_url)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              t.ID,
			"league_id":       t.LeagueID,
			"name":            t.Name,
			"external_api_id": nullString(t.ExternalAPIID),
			"primary_color":   nullString(t.PrimaryColor),
			"secondary_color": nullString(t.SecondaryColor),
			"logo_url":        nullString(t.LogoURL),
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
