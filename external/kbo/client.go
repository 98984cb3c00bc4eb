package kbo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neuproject/sports-calendar/internal/platform/httpclient"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/platform/resilience"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

// The schedule endpoint is the one the mobile web app calls; it rejects
// requests without browser-looking headers.
const (
	defaultBaseURL   = "https://api-gw.sports.naver.com"
	schedulePath     = "/schedule/games"
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	scheduleReferer  = "https://m.sports.naver.com/kbaseball/schedule/index"
	scheduleOrigin   = "https://m.sports.naver.com"

	leagueHint = "KBO"

	// Regular season plus postseason runs March through November.
	seasonFirstMonth = 3
	seasonLastMonth  = 11
)

// kst anchors game times; the schedule API reports wall-clock times without a
// zone designator.
var kst = time.FixedZone("KST", 9*60*60)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http   *httpclient.Client
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

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "kbo",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		logger: logger,
		now:    time.Now,
	}
}

func (c *Client) Source() usecase.Source {
	return usecase.SourceKBO
}

// FetchMatches walks the season month by month. A failing month is logged and
// skipped so one flaky window never drops the rest of the season.
func (c *Client) FetchMatches(ctx context.Context) ([]usecase.ExternalMatch, error) {
	year := c.now().In(kst).Year()
	out := make([]usecase.ExternalMatch, 0, 720)

	failed := 0
	months := 0
	var lastErr error
	for month := seasonFirstMonth; month <= seasonLastMonth; month++ {
		months++
		games, err := c.monthlyGames(ctx, year, month)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.WarnContext(ctx, "fetch month failed", "year", year, "month", month, "error", err)
			failed++
			lastErr = err
			continue
		}
		for _, game := range games {
			out = append(out, mapGame(game))
		}
	}

	if failed > 0 && failed == months {
		return nil, fmt.Errorf("all season months failed: %w", lastErr)
	}
	return out, nil
}

func (c *Client) monthlyGames(ctx context.Context, year, month int) ([]gameItem, error) {
	fromDate, toDate := DateRange(year, month)

	query := url.Values{}
	query.Set("fields", "basic,schedule,baseball,manualRelayUrl")
	query.Set("upperCategoryId", "kbaseball")
	query.Set("categoryId", "kbo")
	query.Set("fromDate", fromDate)
	query.Set("toDate", toDate)
	query.Set("size", "500")

	headers := http.Header{}
	headers.Set("User-Agent", browserUserAgent)
	headers.Set("Referer", scheduleReferer)
	headers.Set("Origin", scheduleOrigin)

	var envelope scheduleEnvelope
	if err := c.http.GetJSON(ctx, schedulePath, query, headers, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result.Games, nil
}

// DateRange returns the first and last day of the month as schedule API date
// strings.
func DateRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

type scheduleEnvelope struct {
	Result struct {
		Games []gameItem `json:"games"`
	} `json:"result"`
}

type gameItem struct {
	GameID        string `json:"gameId"`
	GameDateTime  string `json:"gameDateTime"`
	StatusCode    string `json:"statusCode"`
	HomeTeamName  string `json:"homeTeamName"`
	HomeTeamScore int    `json:"homeTeamScore"`
	AwayTeamName  string `json:"awayTeamName"`
	AwayTeamScore int    `json:"awayTeamScore"`
	Stadium       string `json:"stadium"`
}

func mapGame(item gameItem) usecase.ExternalMatch {
	return usecase.ExternalMatch{
		ExternalID:   "KBO_" + strings.TrimSpace(item.GameID),
		LeagueHint:   leagueHint,
		HomeTeamName: strings.TrimSpace(item.HomeTeamName),
		AwayTeamName: strings.TrimSpace(item.AwayTeamName),
		StartsAt:     parseGameTime(item.GameDateTime),
		Status:       item.StatusCode,
		HomeScore:    item.HomeTeamScore,
		AwayScore:    item.AwayTeamScore,
		Venue:        strings.TrimSpace(item.Stadium),
	}
}

func parseGameTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, raw, kst); err == nil {
			return parsed.UTC()
		}
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC()
	}
	return time.Time{}
}
