package team

import "fmt"

// Team is a followable club inside a league.
//
// ExternalAPIID, when present, is provider-prefixed ("FB_5", "KBO_SS",
// "ESPN_NFL_134") so ids from different providers never collide. The schema
// holds a single column, so a team is keyed to at most one provider.
type Team struct {
	ID             string
	LeagueID       string
	Name           string
	ExternalAPIID  string
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
