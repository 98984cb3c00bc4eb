package usecase

import (
	"context"
	"time"
)

// Source identifies one upstream fixture provider.
type Source string

const (
	SourceFootballData Source = "football-data"
	SourcePandaScore   Source = "pandascore"
	SourceKBO          Source = "kbo"
	SourceESPN         Source = "espn"
)

// ExternalMatch is one provider fixture normalized to a common shape before
// persistence. Status keeps the provider's own vocabulary; the sync engine
// folds it into the internal tri-state per source.
type ExternalMatch struct {
	ExternalID   string // provider-prefixed, e.g. "FB_12345"
	LeagueHint   string // fragment matched against seeded league names
	HomeTeamName string
	AwayTeamName string
	HomeTeamRef  string // provider-prefixed team reference, empty when absent
	AwayTeamRef  string
	StartsAt     time.Time
	Status       string
	HomeScore    int
	AwayScore    int
	Venue        string
}

// MatchProvider fetches the current fixture window from one upstream API.
type MatchProvider interface {
	Source() Source
	FetchMatches(ctx context.Context) ([]ExternalMatch, error)
}

// SourceReport carries per-source sync counters. Error is the fetch failure
// message when the whole source was skipped; row-level rejections only bump
// Rejected.
type SourceReport struct {
	Source     Source `json:"source"`
	Fetched    int    `json:"fetched"`
	Created    int    `json:"created"`
	Updated    int    `json:"updated"`
	Skipped    int    `json:"skipped"`
	Rejected   int    `json:"rejected"`
	Unresolved int    `json:"unresolved"`
	Error      string `json:"error,omitempty"`
}

// SyncSummary aggregates one full sync run across all sources.
type SyncSummary struct {
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Reports    []SourceReport `json:"reports"`
}

// Changed reports how many rows were written during the run.
func (s SyncSummary) Changed() int {
	total := 0
	for _, report := range s.Reports {
		total += report.Created + report.Updated
	}
	return total
}

// MatchEventPublisher broadcasts that match data changed so connected clients
// can refresh. Publishing is fire-and-forget from the sync engine's view.
type MatchEventPublisher interface {
	PublishMatchesUpdated(ctx context.Context, summary SyncSummary) error
}
