package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/neuproject/sports-calendar/internal/domain/follow"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/platform/cache"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
)

const (
	recentDefaultDays = 7
	recentMaxDays     = 90
	recentTakeLimit   = 20
)

// CalendarQuery selects one month of matches. A non-empty MemberUID narrows
// the result to that member's followed teams, plus event-type rows from any
// league holding a followed team.
type CalendarQuery struct {
	Year      int
	Month     int
	MemberUID string
}

// RecentQuery selects finished matches from the trailing window, newest
// first, for the results ticker.
type RecentQuery struct {
	Days      int
	MemberUID string
}

// MatchService serves the calendar and recent-results read paths.
type MatchService struct {
	matches match.Repository
	teams   team.Repository
	follows follow.Repository
	store   *cache.Store
	logger  *logging.Logger
	now     func() time.Time
}

func NewMatchService(
	matches match.Repository,
	teams team.Repository,
	follows follow.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matches: matches,
		teams:   teams,
		follows: follows,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *MatchService) Calendar(ctx context.Context, query CalendarQuery) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Calendar")
	defer span.End()

	if query.Year < 2000 || query.Year > 2100 {
		return nil, fmt.Errorf("%w: year must be between 2000 and 2100", ErrInvalidInput)
	}
	if query.Month < 1 || query.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	key := fmt.Sprintf("matches:calendar:%s:%04d-%02d", cacheMemberKey(query.MemberUID), query.Year, query.Month)
	value, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.loadCalendar(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]match.Match)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload type %T", value)
	}
	return rows, nil
}

func (s *MatchService) loadCalendar(ctx context.Context, query CalendarQuery) ([]match.Match, error) {
	from := time.Date(query.Year, time.Month(query.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.matches.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list calendar matches: %w", err)
	}
	if query.MemberUID == "" {
		return rows, nil
	}

	teamIDs, leagueIDs, err := s.followedScope(ctx, query.MemberUID)
	if err != nil {
		return nil, err
	}

	filtered := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		if _, ok := teamIDs[row.HomeTeamID]; ok && row.HomeTeamID != "" {
			filtered = append(filtered, row)
			continue
		}
		if _, ok := teamIDs[row.AwayTeamID]; ok && row.AwayTeamID != "" {
			filtered = append(filtered, row)
			continue
		}
		// Event rows have no team link; they ride along when the member
		// follows any team in the same league.
		if row.IsEvent() {
			if _, ok := leagueIDs[row.LeagueID]; ok {
				filtered = append(filtered, row)
			}
		}
	}
	return filtered, nil
}

func (s *MatchService) Recent(ctx context.Context, query RecentQuery) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Recent")
	defer span.End()

	days := query.Days
	if days <= 0 {
		days = recentDefaultDays
	}
	if days > recentMaxDays {
		return nil, fmt.Errorf("%w: days must be at most %d", ErrInvalidInput, recentMaxDays)
	}

	since := s.now().UTC().AddDate(0, 0, -days)
	if query.MemberUID == "" {
		rows, err := s.matches.ListFinishedSince(ctx, since, recentTakeLimit)
		if err != nil {
			return nil, fmt.Errorf("list recent matches: %w", err)
		}
		return rows, nil
	}

	// The take limit applies after the follow filter; a followed team's result
	// must not be pushed out by newer matches the member does not follow.
	rows, err := s.matches.ListFinishedSince(ctx, since, 0)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}

	teamIDs, _, err := s.followedScope(ctx, query.MemberUID)
	if err != nil {
		return nil, err
	}

	filtered := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		if _, ok := teamIDs[row.HomeTeamID]; ok && row.HomeTeamID != "" {
			filtered = append(filtered, row)
		} else if _, ok := teamIDs[row.AwayTeamID]; ok && row.AwayTeamID != "" {
			filtered = append(filtered, row)
		}
		if len(filtered) == recentTakeLimit {
			break
		}
	}
	return filtered, nil
}

// followedScope returns the member's followed team ids plus the leagues those
// teams belong to.
func (s *MatchService) followedScope(ctx context.Context, memberUID string) (map[string]struct{}, map[string]struct{}, error) {
	followed, err := s.follows.ListByMember(ctx, memberUID)
	if err != nil {
		return nil, nil, fmt.Errorf("list follows: %w", err)
	}

	teamIDs := make(map[string]struct{}, len(followed))
	leagueIDs := make(map[string]struct{}, len(followed))
	for _, f := range followed {
		teamIDs[f.TeamID] = struct{}{}
		followedTeam, ok, err := s.teams.GetByID(ctx, f.TeamID)
		if err != nil {
			return nil, nil, fmt.Errorf("load followed team: %w", err)
		}
		if ok {
			leagueIDs[followedTeam.LeagueID] = struct{}{}
		}
	}
	return teamIDs, leagueIDs, nil
}

func (s *MatchService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoad(ctx, key, loader)
}

func cacheMemberKey(memberUID string) string {
	if memberUID == "" {
		return "-"
	}
	return memberUID
}
