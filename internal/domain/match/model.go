package match

import (
	"fmt"
	"strings"
	"time"
)

// Status is the internal tri-state every provider vocabulary maps into.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusFinished  Status = "finished"
)

// NormalizeStatus folds arbitrary stored text into a valid Status. Unknown
// values fall back to scheduled so a bad row never reads as complete.
func NormalizeStatus(value string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusOngoing:
		return StatusOngoing
	case StatusFinished:
		return StatusFinished
	default:
		return StatusScheduled
	}
}

// Match is one calendar entry.
//
// ExternalAPIID is the provider-prefixed natural key ("FB_12345", "ESPN_998");
// exactly one row exists per distinct provider match. HomeTeamID/AwayTeamID
// are empty when team resolution missed, and both empty for event-type rows
// (races etc.) where HomeTeamName carries the event title.
type Match struct {
	ID            string
	ExternalAPIID string
	LeagueID      string
	HomeTeamID    string
	AwayTeamID    string
	HomeTeamName  string
	AwayTeamName  string
	MatchAt       time.Time
	Status        Status
	HomeScore     int
	AwayScore     int
	Venue         string
	UpdatedAt     time.Time
}

func (m Match) Validate() error {
	if m.ExternalAPIID == "" {
		return fmt.Errorf("match external api id is required")
	}
	if m.LeagueID == "" {
		return fmt.Errorf("match league id is required")
	}
	if m.HomeTeamName == "" {
		return fmt.Errorf("match home team name is required")
	}
	if m.MatchAt.IsZero() {
		return fmt.Errorf("match time is required")
	}

	return nil
}

// IsEvent reports whether this row is an event-type entry rather than a
// two-sided match.
func (m Match) IsEvent() bool {
	return m.HomeTeamID == "" && m.AwayTeamID == "" && m.AwayTeamName == ""
}

// ChangedFields holds the mutable subset compared during upsert. Team
// assignments and the external id are deliberately absent: they are anchored
// at creation time and never touched by re-sync.
type ChangedFields struct {
	Status    Status
	HomeScore int
	AwayScore int
	MatchAt   time.Time
	Venue     string
}

// Diff reports whether any tracked field differs from the stored row.
// Instant equality is used for MatchAt so timezone representation never
// causes a spurious write.
func (m Match) Diff(next ChangedFields) bool {
	return m.Status != next.Status ||
		m.HomeScore != next.HomeScore ||
		m.AwayScore != next.AwayScore ||
		!m.MatchAt.Equal(next.MatchAt) ||
		m.Venue != next.Venue
}
