package postgres

import (
	"database/sql"
	"time"

	"github.com/neuproject/sports-calendar/internal/domain/follow"
	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/domain/team"
)

type leagueTableModel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Category string `db:"category"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
	}
}

type teamTableModel struct {
	ID             string         `db:"id"`
	LeagueID       string         `db:"league_id"`
	Name           string         `db:"name"`
	ExternalAPIID  sql.NullString `db:"external_api_id"`
	PrimaryColor   sql.NullString `db:"primary_color"`
	SecondaryColor sql.NullString `db:"secondary_color"`
	LogoURL        sql.NullString `db:"logo_url"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:             m.ID,
		LeagueID:       m.LeagueID,
		Name:           m.Name,
		ExternalAPIID:  m.ExternalAPIID.String,
		PrimaryColor:   m.PrimaryColor.String,
		SecondaryColor: m.SecondaryColor.String,
		LogoURL:        m.LogoURL.String,
	}
}

type matchTableModel struct {
	ID            string         `db:"id"`
	ExternalAPIID string         `db:"external_api_id"`
	LeagueID      string         `db:"league_id"`
	HomeTeamID    sql.NullString `db:"home_team_id"`
	AwayTeamID    sql.NullString `db:"away_team_id"`
	HomeTeamName  string         `db:"home_team_name"`
	AwayTeamName  string         `db:"away_team_name"`
	MatchAt       time.Time      `db:"match_at"`
	Status        string         `db:"status"`
	HomeScore     int            `db:"home_score"`
	AwayScore     int            `db:"away_score"`
	Venue         string         `db:"venue"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		ExternalAPIID: m.ExternalAPIID,
		LeagueID:      m.LeagueID,
		HomeTeamID:    m.HomeTeamID.String,
		AwayTeamID:    m.AwayTeamID.String,
		HomeTeamName:  m.HomeTeamName,
		AwayTeamName:  m.AwayTeamName,
		MatchAt:       m.MatchAt,
		Status:        match.NormalizeStatus(m.Status),
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Venue:         m.Venue,
		UpdatedAt:     m.UpdatedAt,
	}
}

type followTableModel struct {
	MemberUID string    `db:"member_uid"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m followTableModel) toDomain() follow.Follow {
	return follow.Follow{
		MemberUID: m.MemberUID,
		TeamID:    m.TeamID,
		CreatedAt: m.CreatedAt,
	}
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
