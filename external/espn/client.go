package espn

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/neuproject/sports-calendar/internal/platform/httpclient"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/platform/resilience"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// Sport identifies one ESPN scoreboard feed. Code doubles as the league hint
// and the team reference prefix.
type Sport struct {
	Code string
	Path string
}

// DefaultSports lists the scoreboards pulled on every sync.
var DefaultSports = []Sport{
	{Code: "NFL", Path: "football/nfl"},
	{Code: "NHL", Path: "hockey/nhl"},
	{Code: "NBA", Path: "basketball/nba"},
	{Code: "MLB", Path: "baseball/mlb"},
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Sports         []Sport
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http   *httpclient.Client
	sports []Sport
	logger *logging.Logger
	now    func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	sports := cfg.Sports
	if len(sports) == 0 {
		sports = DefaultSports
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "espn",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		sports: sports,
		logger: logger,
		now:    time.Now,
	}
}

func (c *Client) Source() usecase.Source {
	return usecase.SourceESPN
}

// FetchMatches pulls every configured scoreboard. Sports are isolated the
// same way football competitions are: one failure skips that sport only.
func (c *Client) FetchMatches(ctx context.Context) ([]usecase.ExternalMatch, error) {
	year := c.now().UTC().Year()
	out := make([]usecase.ExternalMatch, 0, 256)

	failed := 0
	var lastErr error
	for _, sport := range c.sports {
		query := url.Values{}
		query.Set("limit", "100")
		query.Set("dates", SeasonDateRange(sport.Code, year))

		var envelope scoreboardEnvelope
		if err := c.http.GetJSON(ctx, "/"+sport.Path+"/scoreboard", query, nil, &envelope); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.WarnContext(ctx, "fetch scoreboard failed", "sport", sport.Code, "error", err)
			failed++
			lastErr = err
			continue
		}

		for _, event := range envelope.Events {
			mapped, ok := mapEvent(sport.Code, event)
			if !ok {
				continue
			}
			out = append(out, mapped)
		}
	}

	if failed > 0 && failed == len(c.sports) {
		return nil, fmt.Errorf("all scoreboards failed: %w", lastErr)
	}
	return out, nil
}

// SeasonDateRange returns the scoreboard dates window covering the season
// that starts in the given year.
func SeasonDateRange(code string, year int) string {
	switch code {
	case "NFL":
		return fmt.Sprintf("%d0901-%d0215", year, year+1)
	case "NBA", "NHL":
		return fmt.Sprintf("%d1001-%d0630", year, year+1)
	case "MLB":
		return fmt.Sprintf("%d0320-%d1110", year, year)
	default:
		return fmt.Sprintf("%d0101-%d1231", year, year)
	}
}

type scoreboardEnvelope struct {
	Events []eventItem `json:"events"`
}

type eventItem struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"status"`
	Competitions []competitionItem `json:"competitions"`
}

type competitionItem struct {
	Competitors []competitorItem `json:"competitors"`
	Venue       struct {
		FullName string `json:"fullName"`
	} `json:"venue"`
}

type competitorItem struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"team"`
}

func mapEvent(code string, item eventItem) (usecase.ExternalMatch, bool) {
	if len(item.Competitions) == 0 {
		return usecase.ExternalMatch{}, false
	}
	competition := item.Competitions[0]

	var home, away *competitorItem
	for i := range competition.Competitors {
		switch competition.Competitors[i].HomeAway {
		case "home":
			home = &competition.Competitors[i]
		case "away":
			away = &competition.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return usecase.ExternalMatch{}, false
	}

	return usecase.ExternalMatch{
		ExternalID:   "ESPN_" + strings.TrimSpace(item.ID),
		LeagueHint:   code,
		HomeTeamName: strings.TrimSpace(home.Team.DisplayName),
		AwayTeamName: strings.TrimSpace(away.Team.DisplayName),
		HomeTeamRef:  teamRefID(code, home.Team.ID),
		AwayTeamRef:  teamRefID(code, away.Team.ID),
		StartsAt:     parseEventTime(item.Date),
		Status:       item.Status.Type.Name,
		HomeScore:    parseScore(home.Score),
		AwayScore:    parseScore(away.Score),
		Venue:        strings.TrimSpace(competition.Venue.FullName),
	}, true
}

func teamRefID(code, teamID string) string {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return ""
	}
	return "ESPN_" + code + "_" + teamID
}

// parseEventTime handles ESPN's minute-precision timestamps alongside full
// RFC 3339.
func parseEventTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	layouts := []string{
		"2006-01-02T15:04Z07:00",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func parseScore(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
