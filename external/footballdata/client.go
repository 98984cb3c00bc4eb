package footballdata

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neuproject/sports-calendar/internal/platform/httpclient"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/platform/resilience"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

const defaultBaseURL = "https://api.football-data.org/v4"

// defaultCompetitions are the football-data.org competition codes pulled on
// every sync.
var defaultCompetitions = []string{"PL", "BL1", "PD", "SA"}

// leagueHintByCompetition translates competition codes into fragments of the
// seeded league names.
var leagueHintByCompetition = map[string]string{
	"PL":  "EPL",
	"BL1": "Bundesliga",
	"PD":  "La Liga",
	"SA":  "Serie A",
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Competitions   []string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http         *httpclient.Client
	token        string
	competitions []string
	logger       *logging.Logger
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
	competitions := cfg.Competitions
	if len(competitions) == 0 {
		competitions = defaultCompetitions
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "football-data",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
			RedactTokens:   []string{strings.TrimSpace(cfg.Token)},
		}),
		token:        strings.TrimSpace(cfg.Token),
		competitions: competitions,
		logger:       logger,
	}
}

func (c *Client) Source() usecase.Source {
	return usecase.SourceFootballData
}

// FetchMatches pulls every configured competition. A failing competition is
// logged and skipped; the fetch only fails as a whole when no competition
// succeeded.
func (c *Client) FetchMatches(ctx context.Context) ([]usecase.ExternalMatch, error) {
	out := make([]usecase.ExternalMatch, 0, 256)

	failed := 0
	var lastErr error
	for _, code := range c.competitions {
		headers := http.Header{}
		headers.Set("X-Auth-Token", c.token)

		var envelope matchesEnvelope
		if err := c.http.GetJSON(ctx, "/competitions/"+code+"/matches", nil, headers, &envelope); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.WarnContext(ctx, "fetch competition failed", "competition", code, "error", err)
			failed++
			lastErr = err
			continue
		}

		hint := leagueHintByCompetition[code]
		if hint == "" {
			hint = code
		}
		for _, item := range envelope.Matches {
			out = append(out, mapMatch(hint, item))
		}
	}

	if failed > 0 && failed == len(c.competitions) {
		return nil, fmt.Errorf("all competitions failed: %w", lastErr)
	}
	return out, nil
}

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID       int64     `json:"id"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	HomeTeam teamRef   `json:"homeTeam"`
	AwayTeam teamRef   `json:"awayTeam"`
	Score    scoreItem `json:"score"`
	Venue    string    `json:"venue"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type scoreItem struct {
	FullTime struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"fullTime"`
}

func mapMatch(leagueHint string, item matchItem) usecase.ExternalMatch {
	return usecase.ExternalMatch{
		ExternalID:   "FB_" + strconv.FormatInt(item.ID, 10),
		LeagueHint:   leagueHint,
		HomeTeamName: strings.TrimSpace(item.HomeTeam.Name),
		AwayTeamName: strings.TrimSpace(item.AwayTeam.Name),
		HomeTeamRef:  teamRefID(item.HomeTeam.ID),
		AwayTeamRef:  teamRefID(item.AwayTeam.ID),
		StartsAt:     item.UTCDate,
		Status:       item.Status,
		HomeScore:    scoreOrZero(item.Score.FullTime.Home),
		AwayScore:    scoreOrZero(item.Score.FullTime.Away),
		Venue:        strings.TrimSpace(item.Venue),
	}
}

func teamRefID(id int64) string {
	if id <= 0 {
		return ""
	}
	return "FB_" + strconv.FormatInt(id, 10)
}

func scoreOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
