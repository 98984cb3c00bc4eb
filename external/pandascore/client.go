package pandascore

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

const (
	defaultBaseURL  = "https://api.pandascore.co"
	defaultLeagueID = 293 // LCK
	defaultPerPage  = 50
	leagueHint      = "LCK"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	LeagueID       int
	PerPage        int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http     *httpclient.Client
	token    string
	leagueID int
	perPage  int
	logger   *logging.Logger
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
	leagueID := cfg.LeagueID
	if leagueID <= 0 {
		leagueID = defaultLeagueID
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "pandascore",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
			RedactTokens:   []string{strings.TrimSpace(cfg.Token)},
		}),
		token:    strings.TrimSpace(cfg.Token),
		leagueID: leagueID,
		perPage:  perPage,
		logger:   logger,
	}
}

func (c *Client) Source() usecase.Source {
	return usecase.SourcePandaScore
}

func (c *Client) FetchMatches(ctx context.Context) ([]usecase.ExternalMatch, error) {
	query := url.Values{}
	query.Set("filter[league_id]", strconv.Itoa(c.leagueID))
	query.Set("per_page", strconv.Itoa(c.perPage))

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.token)

	var items []matchItem
	if err := c.http.GetJSON(ctx, "/lol/matches", query, headers, &items); err != nil {
		return nil, fmt.Errorf("fetch lol matches league_id=%d: %w", c.leagueID, err)
	}

	out := make([]usecase.ExternalMatch, 0, len(items))
	for _, item := range items {
		mapped, ok := mapMatch(item)
		if !ok {
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

type matchItem struct {
	ID        int64          `json:"id"`
	Status    string         `json:"status"`
	BeginAt   *time.Time     `json:"begin_at"`
	Opponents []opponentItem `json:"opponents"`
	Results   []resultItem   `json:"results"`
	League    struct {
		Name string `json:"name"`
	} `json:"league"`
}

type opponentItem struct {
	Opponent struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"opponent"`
}

type resultItem struct {
	Score int `json:"score"`
}

// mapMatch skips rows missing either opponent; pandascore lists bracket slots
// before the participants are decided.
func mapMatch(item matchItem) (usecase.ExternalMatch, bool) {
	if len(item.Opponents) < 2 {
		return usecase.ExternalMatch{}, false
	}

	home := item.Opponents[0].Opponent
	away := item.Opponents[1].Opponent

	homeScore, awayScore := 0, 0
	if len(item.Results) > 0 {
		homeScore = item.Results[0].Score
	}
	if len(item.Results) > 1 {
		awayScore = item.Results[1].Score
	}

	startsAt := time.Time{}
	if item.BeginAt != nil {
		startsAt = *item.BeginAt
	}

	return usecase.ExternalMatch{
		ExternalID:   "PS_" + strconv.FormatInt(item.ID, 10),
		LeagueHint:   leagueHint,
		HomeTeamName: strings.TrimSpace(home.Name),
		AwayTeamName: strings.TrimSpace(away.Name),
		HomeTeamRef:  teamRefID(home.ID),
		AwayTeamRef:  teamRefID(away.ID),
		StartsAt:     startsAt,
		Status:       item.Status,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		Venue:        strings.TrimSpace(item.League.Name),
	}, true
}

func teamRefID(id int64) string {
	if id <= 0 {
		return ""
	}
	return "PS_" + strconv.FormatInt(id, 10)
}
