package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/platform/id"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
)

const syncWorkerCap = 4

type upsertOutcome int

const (
	outcomeCreated upsertOutcome = iota
	outcomeUpdated
	outcomeSkipped
	outcomeRejected
)

// SyncService pulls fixtures from every configured provider and reconciles
// them into the match store. Sources are independent: one provider failing
// never blocks the others.
type SyncService struct {
	leagues   league.Repository
	matches   match.Repository
	providers []MatchProvider
	resolver  *TeamResolver
	publisher MatchEventPublisher
	ids       id.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewSyncService(
	leagues league.Repository,
	matches match.Repository,
	providers []MatchProvider,
	resolver *TeamResolver,
	publisher MatchEventPublisher,
	ids id.Generator,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	return &SyncService{
		leagues:   leagues,
		matches:   matches,
		providers: providers,
		resolver:  resolver,
		publisher: publisher,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

// SyncAll fans the providers out over a bounded worker pool and reconciles
// every fetched fixture. The returned summary always carries one report per
// provider, failed ones included.
func (s *SyncService) SyncAll(ctx context.Context) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll")
	defer span.End()

	if len(s.providers) == 0 {
		return SyncSummary{}, fmt.Errorf("%w: no match providers configured", ErrDependencyUnavailable)
	}

	summary := SyncSummary{StartedAt: s.now().UTC()}

	workerCount := len(s.providers)
	if workerCount > syncWorkerCap {
		workerCount = syncWorkerCap
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	reports := make(chan SourceReport, len(s.providers))

	var workers sync.WaitGroup
	for _, provider := range s.providers {
		provider := provider
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			reports <- s.syncSource(ctx, provider)
		}); err != nil {
			workers.Done()
			return SyncSummary{}, fmt.Errorf("submit sync task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(reports)

	for report := range reports {
		summary.Reports = append(summary.Reports, report)
	}
	sort.SliceStable(summary.Reports, func(i, j int) bool {
		return summary.Reports[i].Source < summary.Reports[j].Source
	})
	summary.FinishedAt = s.now().UTC()

	s.logger.InfoContext(ctx, "sync run finished",
		"changed", summary.Changed(),
		"sources", len(summary.Reports),
		"duration_ms", summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	)

	if summary.Changed() > 0 && s.publisher != nil {
		if err := s.publisher.PublishMatchesUpdated(ctx, summary); err != nil {
			s.logger.WarnContext(ctx, "publish matches updated event failed", "error", err)
		}
	}

	return summary, nil
}

func (s *SyncService) syncSource(ctx context.Context, provider MatchProvider) SourceReport {
	report := SourceReport{Source: provider.Source()}

	fetched, err := provider.FetchMatches(ctx)
	if err != nil {
		report.Error = err.Error()
		s.logger.ErrorContext(ctx, "fetch source failed", "source", provider.Source(), "error", err)
		return report
	}
	report.Fetched = len(fetched)

	leaguesByHint := make(map[string]league.League, 8)
	for _, external := range fetched {
		outcome, unresolved, err := s.upsertMatch(ctx, provider.Source(), external, leaguesByHint)
		if err != nil {
			report.Rejected++
			s.logger.WarnContext(ctx, "upsert match failed",
				"source", provider.Source(),
				"external_id", external.ExternalID,
				"error", err,
			)
			continue
		}
		report.Unresolved += unresolved
		switch outcome {
		case outcomeCreated:
			report.Created++
		case outcomeUpdated:
			report.Updated++
		case outcomeSkipped:
			report.Skipped++
		case outcomeRejected:
			report.Rejected++
		}
	}

	s.logger.InfoContext(ctx, "source sync finished",
		"source", provider.Source(),
		"fetched", report.Fetched,
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped,
		"rejected", report.Rejected,
		"unresolved", report.Unresolved,
	)
	return report
}

// upsertMatch reconciles one provider fixture. New rows anchor their team
// assignments once; later runs only touch status, scores, time and venue so a
// manual correction to a team link survives every subsequent sync.
func (s *SyncService) upsertMatch(
	ctx context.Context,
	source Source,
	external ExternalMatch,
	leaguesByHint map[string]league.League,
) (upsertOutcome, int, error) {
	if strings.TrimSpace(external.ExternalID) == "" {
		return outcomeRejected, 0, nil
	}
	if strings.TrimSpace(external.HomeTeamName) == "" || strings.TrimSpace(external.AwayTeamName) == "" {
		return outcomeRejected, 0, nil
	}
	if external.StartsAt.IsZero() {
		return outcomeRejected, 0, nil
	}

	target, ok, err := s.lookupLeague(ctx, external.LeagueHint, leaguesByHint)
	if err != nil {
		return outcomeRejected, 0, err
	}
	if !ok {
		s.logger.WarnContext(ctx, "no league matches hint, dropping fixture",
			"source", source,
			"league_hint", external.LeagueHint,
			"external_id", external.ExternalID,
		)
		return outcomeRejected, 0, nil
	}

	status := mapProviderStatus(source, external.Status)

	existing, found, err := s.matches.GetByExternalID(ctx, external.ExternalID)
	if err != nil {
		return outcomeRejected, 0, err
	}

	if found {
		fields := match.ChangedFields{
			Status:    status,
			HomeScore: external.HomeScore,
			AwayScore: external.AwayScore,
			MatchAt:   external.StartsAt,
			Venue:     external.Venue,
		}
		if !existing.Diff(fields) {
			return outcomeSkipped, 0, nil
		}
		if _, err := s.matches.Update(ctx, existing.ID, fields); err != nil {
			return outcomeRejected, 0, err
		}
		return outcomeUpdated, 0, nil
	}

	unresolved := 0
	homeTeamID, err := s.resolver.Resolve(ctx, target.ID, external.HomeTeamName, external.HomeTeamRef)
	if err != nil {
		return outcomeRejected, 0, err
	}
	if homeTeamID == "" {
		unresolved++
	}
	awayTeamID, err := s.resolver.Resolve(ctx, target.ID, external.AwayTeamName, external.AwayTeamRef)
	if err != nil {
		return outcomeRejected, 0, err
	}
	if awayTeamID == "" {
		unresolved++
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return outcomeRejected, 0, fmt.Errorf("generate match id: %w", err)
	}

	row := match.Match{
		ID:            matchID,
		ExternalAPIID: external.ExternalID,
		LeagueID:      target.ID,
		HomeTeamID:    homeTeamID,
		AwayTeamID:    awayTeamID,
		HomeTeamName:  strings.TrimSpace(external.HomeTeamName),
		AwayTeamName:  strings.TrimSpace(external.AwayTeamName),
		MatchAt:       external.StartsAt,
		Status:        status,
		HomeScore:     external.HomeScore,
		AwayScore:     external.AwayScore,
		Venue:         strings.TrimSpace(external.Venue),
		UpdatedAt:     s.now().UTC(),
	}
	if err := row.Validate(); err != nil {
		return outcomeRejected, unresolved, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.matches.Create(ctx, row); err != nil {
		return outcomeRejected, unresolved, err
	}

	return outcomeCreated, unresolved, nil
}

func (s *SyncService) lookupLeague(
	ctx context.Context,
	hint string,
	cache map[string]league.League,
) (league.League, bool, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return league.League{}, false, nil
	}
	if cached, ok := cache[hint]; ok {
		return cached, cached.ID != "", nil
	}

	found, ok, err := s.leagues.FindByNameContains(ctx, hint)
	if err != nil {
		return league.League{}, false, err
	}
	if !ok {
		cache[hint] = league.League{}
		return league.League{}, false, nil
	}

	cache[hint] = found
	return found, true, nil
}
