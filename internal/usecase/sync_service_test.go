package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/infrastructure/repository/memory"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
)

type stubProvider struct {
	source  Source
	matches []ExternalMatch
	err     error
}

func (p *stubProvider) Source() Source { return p.source }

func (p *stubProvider) FetchMatches(context.Context) ([]ExternalMatch, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.matches, nil
}

type recordingPublisher struct {
	calls     int
	lastTotal int
}

func (p *recordingPublisher) PublishMatchesUpdated(_ context.Context, summary SyncSummary) error {
	p.calls++
	p.lastTotal = summary.Changed()
	return nil
}

type syncFixture struct {
	leagues   *memory.LeagueRepository
	teams     *memory.TeamRepository
	matches   *memory.MatchRepository
	publisher *recordingPublisher
}

func newSyncFixture() syncFixture {
	return syncFixture{
		leagues: memory.NewLeagueRepository([]league.League{
			{ID: "lg_epl", Name: "EPL", Category: league.CategorySoccer},
			{ID: "lg_kbo", Name: "KBO", Category: league.CategoryBaseball},
		}),
		teams: memory.NewTeamRepository([]team.Team{
			{ID: "tm_arsenal", LeagueID: "lg_epl", Name: "Arsenal", ExternalAPIID: "FB_57"},
			{ID: "tm_chelsea", LeagueID: "lg_epl", Name: "Chelsea", ExternalAPIID: "FB_61"},
		}),
		matches:   memory.NewMatchRepository(),
		publisher: &recordingPublisher{},
	}
}

func (f syncFixture) service(providers ...MatchProvider) *SyncService {
	logger := logging.NewNop()
	return NewSyncService(
		f.leagues,
		f.matches,
		providers,
		NewTeamResolver(f.teams, logger),
		f.publisher,
		nil,
		logger,
	)
}

func fixtureMatch() ExternalMatch {
	return ExternalMatch{
		ExternalID:   "FB_1001",
		LeagueHint:   "EPL",
		HomeTeamName: "Arsenal",
		AwayTeamName: "Chelsea",
		HomeTeamRef:  "FB_57",
		AwayTeamRef:  "FB_61",
		StartsAt:     time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Status:       "TIMED",
		Venue:        "Emirates Stadium",
	}
}

func TestSyncAllCreatesMatch(t *testing.T) {
	t.Parallel()

	f := newSyncFixture()
	svc := f.service(&stubProvider{source: SourceFootballData, matches: []ExternalMatch{fixtureMatch()}})

	summary, err := svc.SyncAll(context.Background())
	if err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	if len(summary.Reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(summary.Reports))
	}
	report := summary.Reports[0]
	if report.Created != 1 || report.Updated != 0 || report.Skipped != 0 || report.Rejected != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	stored, ok, err := f.matches.GetByExternalID(context.Background(), "FB_1001")
	if err != nil || !ok {
		t.Fatalf("stored match missing: ok=%v err=%v", ok, err)
	}
	if stored.LeagueID != "lg_epl" {
		t.Fatalf("league = %q, want lg_epl", stored.LeagueID)
	}
	if stored.HomeTeamID != "tm_arsenal" || stored.AwayTeamID != "tm_chelsea" {
		t.Fatalf("teams = %q/%q, want tm_arsenal/tm_chelsea", stored.HomeTeamID, stored.AwayTeamID)
	}
	if stored.Status != match.StatusScheduled {
		t.Fatalf("status = %q, want scheduled", stored.Status)
	}
	if f.publisher.calls != 1 || f.publisher.lastTotal != 1 {
		t.Fatalf("publisher calls=%d total=%d, want 1/1", f.publisher.calls, f.publisher.lastTotal)
	}
}

func TestSyncAllSkipsUnchangedMatch(t *testing.T) {
	t.Parallel()

	f := newSyncFixture()
	svc := f.service(&stubProvider{source: SourceFootballData, matches: []ExternalMatch{fixtureMatch()}})

	if _, err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("first SyncAll: %v", err)
	}
	summary, err := svc.SyncAll(context.Background())
	if err != nil {
		t.Fatalf("second SyncAll: %v", err)
	}

	report := summary.Reports[0]
	if report.Skipped != 1 || report.Created != 0 || report.Updated != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if f.publisher.calls != 1 {
		t.Fatalf("publisher calls = %d, want 1 (no event on a no-op run)", f.publisher.calls)
	}
}

func TestSyncAllUpdatesChangedMatchWithoutReassigningTeams(t *testing.T) {
	t.Parallel()

	f := newSyncFixture()
	first := fixtureMatch()
	svc := f.service(&stubProvider{source: SourceFootballData, matches: []ExternalMatch{first}})
	if _, err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("seed SyncAll: %v", err)
	}

	finished := first
	finished.Status = "FINISHED"
	finished.HomeScore = 2
	finished.AwayScore = 1
	// Renamed beyond recognition upstream; the stored assignment must hold.
	finished.HomeTeamName = "North London FC"
	finished.HomeTeamRef = ""

	svc2 := f.service(&stubProvider{source: SourceFootballData, matches: []ExternalMatch{finished}})
	summary, err := svc2.SyncAll(context.Background())
	if err != nil {
		t.Fatalf("update SyncAll: %v", err)
	}
	if summary.Reports[0].Updated != 1 {
		t.Fatalf("unexpected report: %+v", summary.Reports[0])
	}

	stored, _, err := f.matches.GetByExternalID(context.Background(), "FB_1001")
	if err != nil {
		t.Fatalf("GetByExternalID: %v", err)
	}
	if stored.Status != match.StatusFinished || stored.HomeScore != 2 || stored.AwayScore != 1 {
		t.Fatalf("update not applied: %+v", stored)
	}
	if stored.HomeTeamID != "tm_arsenal" {
		t.Fatalf("home team id changed to %q", stored.HomeTeamID)
	}
	if stored.HomeTeamName != "Arsenal" {
		t.Fatalf("home team name changed to %q", stored.HomeTeamName)
	}
}

func TestSyncAllRejectsIncompleteRows(t *testing.T) {
	t.Parallel()

	noAway := fixtureMatch()
	noAway.ExternalID = "FB_2001"
	noAway.AwayTeamName = ""

	noTime := fixtureMatch()
	noTime.ExternalID = "FB_2002"
	noTime.StartsAt = time.Time{}

	noLeague := fixtureMatch()
	noLeague.ExternalID = "FB_2003"
	noLeague.LeagueHint = "Unknown League"

	f := newSyncFixture()
	svc := f.service(&stubProvider{
		source:  SourceFootballData,
		matches: []ExternalMatch{noAway, noTime, noLeague},
	})

	summary, err := svc.SyncAll(context.Background())
	if err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	report := summary.Reports[0]
	if report.Rejected != 3 || report.Created != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if f.publisher.calls != 0 {
		t.Fatalf("publisher calls = %d, want 0", f.publisher.calls)
	}
}

func TestSyncAllCountsUnresolvedTeams(t *testing.T) {
	t.Parallel()

	row := fixtureMatch()
	row.AwayTeamName = "Mystery Wanderers"
	row.AwayTeamRef = ""

	f := newSyncFixture()
	svc := f.service(&stubProvider{source: SourceFootballData, matches: []ExternalMatch{row}})

	summary, err := svc.SyncAll(context.Background())
	if err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	report := summary.Reports[0]
	if report.Created != 1 || report.Unresolved != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	stored, _, err := f.matches.GetByExternalID(context.Background(), "FB_1001")
	if err != nil {
		t.Fatalf("GetByExternalID: %v", err)
	}
	if stored.AwayTeamID != "" {
		t.Fatalf("away team id = %q, want empty", stored.AwayTeamID)
	}
	if stored.AwayTeamName != "Mystery Wanderers" {
		t.Fatalf("away team name = %q", stored.AwayTeamName)
	}
}

func TestSyncAllIsolatesFailingSource(t *testing.T) {
	t.Parallel()

	f := newSyncFixture()
	svc := f.service(
		&stubProvider{source: SourceKBO, err: errors.New("naver timeout")},
		&stubProvider{source: SourceFootballData, matches: []ExternalMatch{fixtureMatch()}},
	)

	summary, err := svc.SyncAll(context.Background())
	if err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	if len(summary.Reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(summary.Reports))
	}

	// Reports come back sorted by source name.
	if summary.Reports[0].Source != SourceFootballData || summary.Reports[0].Created != 1 {
		t.Fatalf("unexpected first report: %+v", summary.Reports[0])
	}
	if summary.Reports[1].Source != SourceKBO || summary.Reports[1].Error == "" {
		t.Fatalf("unexpected second report: %+v", summary.Reports[1])
	}
}

func TestSyncAllWithoutProviders(t *testing.T) {
	t.Parallel()

	f := newSyncFixture()
	svc := f.service()

	_, err := svc.SyncAll(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("err = %v, want ErrDependencyUnavailable", err)
	}
}
