package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neuproject/sports-calendar/internal/domain/follow"
	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/platform/cache"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
)

// TeamService serves team listings and the follow toggle.
type TeamService struct {
	teams   team.Repository
	leagues league.Repository
	follows follow.Repository
	store   *cache.Store
	logger  *logging.Logger
	now     func() time.Time
}

func NewTeamService(
	teams team.Repository,
	leagues league.Repository,
	follows follow.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teams:   teams,
		leagues: leagues,
		follows: follows,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *TeamService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListLeagues")
	defer span.End()

	return s.leagues.List(ctx)
}

func (s *TeamService) ListTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	if leagueID == "" {
		return s.teams.List(ctx)
	}
	return s.teams.ListByLeague(ctx, leagueID)
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	row, ok, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("load team: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team id=%s", ErrNotFound, teamID)
	}
	return row, nil
}

// ToggleFollow flips the follow state and reports the resulting state.
// Calendar cache entries for the member are dropped so the next read reflects
// the change inside the cache TTL.
func (s *TeamService) ToggleFollow(ctx context.Context, memberUID, teamID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ToggleFollow")
	defer span.End()

	memberUID = strings.TrimSpace(memberUID)
	if memberUID == "" {
		return false, fmt.Errorf("%w: member uid is required", ErrUnauthorized)
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return false, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if _, ok, err := s.teams.GetByID(ctx, teamID); err != nil {
		return false, fmt.Errorf("load team: %w", err)
	} else if !ok {
		return false, fmt.Errorf("%w: team id=%s", ErrNotFound, teamID)
	}

	exists, err := s.follows.Exists(ctx, memberUID, teamID)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}

	following := false
	if exists {
		if err := s.follows.Delete(ctx, memberUID, teamID); err != nil {
			return false, fmt.Errorf("delete follow: %w", err)
		}
	} else {
		row := follow.Follow{
			MemberUID: memberUID,
			TeamID:    teamID,
			CreatedAt: s.now().UTC(),
		}
		if err := row.Validate(); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.follows.Create(ctx, row); err != nil {
			return false, fmt.Errorf("create follow: %w", err)
		}
		following = true
	}

	if s.store != nil {
		s.store.DeletePrefix(ctx, "matches:calendar:"+memberUID)
	}

	s.logger.InfoContext(ctx, "follow toggled", "member_uid", memberUID, "team_id", teamID, "following", following)
	return following, nil
}

func (s *TeamService) FollowedTeams(ctx context.Context, memberUID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.FollowedTeams")
	defer span.End()

	memberUID = strings.TrimSpace(memberUID)
	if memberUID == "" {
		return nil, fmt.Errorf("%w: member uid is required", ErrUnauthorized)
	}

	followed, err := s.follows.ListByMember(ctx, memberUID)
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}

	out := make([]team.Team, 0, len(followed))
	for _, f := range followed {
		row, ok, err := s.teams.GetByID(ctx, f.TeamID)
		if err != nil {
			return nil, fmt.Errorf("load followed team: %w", err)
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}
