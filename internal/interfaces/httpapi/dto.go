package httpapi

import (
	"time"

	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/domain/team"
)

type leagueDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:       l.ID,
		Name:     l.Name,
		Category: l.Category,
	}
}

type teamDTO struct {
	ID             string `json:"id"`
	LeagueID       string `json:"leagueId"`
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:             t.ID,
		LeagueID:       t.LeagueID,
		Name:           t.Name,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		LogoURL:        t.LogoURL,
	}
}

func teamsToDTO(rows []team.Team) []teamDTO {
	items := make([]teamDTO, 0, len(rows))
	for _, t := range rows {
		items = append(items, teamToDTO(t))
	}
	return items
}

type matchDTO struct {
	ID           string    `json:"id"`
	LeagueID     string    `json:"leagueId"`
	HomeTeamID   string    `json:"homeTeamId,omitempty"`
	AwayTeamID   string    `json:"awayTeamId,omitempty"`
	HomeTeamName string    `json:"homeTeamName"`
	AwayTeamName string    `json:"awayTeamName,omitempty"`
	MatchAt      time.Time `json:"matchAt"`
	Status       string    `json:"status"`
	HomeScore    int       `json:"homeScore"`
	AwayScore    int       `json:"awayScore"`
	Venue        string    `json:"venue,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		LeagueID:     m.LeagueID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		HomeTeamName: m.HomeTeamName,
		AwayTeamName: m.AwayTeamName,
		MatchAt:      m.MatchAt,
		Status:       string(m.Status),
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		Venue:        m.Venue,
	}
}

func matchesToDTO(rows []match.Match) []matchDTO {
	items := make([]matchDTO, 0, len(rows))
	for _, m := range rows {
		items = append(items, matchToDTO(m))
	}
	return items
}
