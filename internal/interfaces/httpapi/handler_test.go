package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/infrastructure/repository/memory"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	leagues := memory.NewLeagueRepository([]league.League{
		{ID: "lg_epl", Name: "EPL", Category: league.CategorySoccer},
	})
	teams := memory.NewTeamRepository([]team.Team{
		{ID: "tm_arsenal", LeagueID: "lg_epl", Name: "Arsenal"},
		{ID: "tm_chelsea", LeagueID: "lg_epl", Name: "Chelsea"},
	})
	matches := memory.NewMatchRepository()
	follows := memory.NewFollowRepository()

	seeded := match.Match{
		ID:            "mt_1",
		ExternalAPIID: "FB_1",
		LeagueID:      "lg_epl",
		HomeTeamID:    "tm_arsenal",
		AwayTeamID:    "tm_chelsea",
		HomeTeamName:  "Arsenal",
		AwayTeamName:  "Chelsea",
		MatchAt:       time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Status:        match.StatusScheduled,
	}
	if _, err := matches.Create(context.Background(), seeded); err != nil {
		t.Fatalf("seed match: %v", err)
	}

	matchService := usecase.NewMatchService(matches, teams, follows, nil, logger)
	teamService := usecase.NewTeamService(teams, leagues, follows, nil, logger)
	handler := NewHandler(matchService, teamService, nil, logger)

	return NewRouter(handler, logger, []string{"*"}, "")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["status"].(string); got != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}

func TestRouter_GetCalendar(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/calendar?year=2026&month=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected calendar payload: %v", body)
	}
	row, _ := data[0].(map[string]any)
	if got, _ := row["homeTeamName"].(string); got != "Arsenal" {
		t.Fatalf("unexpected home team: %v", row)
	}
}

func TestRouter_GetCalendarRequiresYear(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/calendar?month=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_ToggleFollow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/follows/toggle",
		strings.NewReader(`{"memberUid": "member-1", "teamId": "tm_arsenal"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if following, _ := data["following"].(bool); !following {
		t.Fatalf("expected following=true, got %v", body)
	}

	// Followed teams are now visible on the member's follow list.
	listReq := httptest.NewRequest(http.MethodGet, "/v1/members/member-1/follows", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", listRec.Code)
	}
	listBody := decodeEnvelope(t, listRec)
	teams, _ := listBody["data"].([]any)
	if len(teams) != 1 {
		t.Fatalf("unexpected follow list: %v", listBody)
	}
}

func TestRouter_ToggleFollowRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/follows/toggle",
		strings.NewReader(`{"memberUid": "member-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_GetTeam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/tm_arsenal", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["name"].(string); got != "Arsenal" {
		t.Fatalf("unexpected team payload: %v", body)
	}

	missingReq := httptest.NewRequest(http.MethodGet, "/v1/teams/tm_ghost", nil)
	missingRec := httptest.NewRecorder()
	router.ServeHTTP(missingRec, missingReq)

	if missingRec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", missingRec.Code)
	}
}

func TestRouter_SyncJobRequiresConfiguredToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestRouter_ListLeaguesAndTeams(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if data, _ := body["data"].([]any); len(data) != 1 {
		t.Fatalf("unexpected leagues payload: %v", body)
	}

	teamsReq := httptest.NewRequest(http.MethodGet, "/v1/leagues/lg_epl/teams", nil)
	teamsRec := httptest.NewRecorder()
	router.ServeHTTP(teamsRec, teamsReq)

	if teamsRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", teamsRec.Code)
	}
	teamsBody := decodeEnvelope(t, teamsRec)
	if data, _ := teamsBody["data"].([]any); len(data) != 2 {
		t.Fatalf("unexpected teams payload: %v", teamsBody)
	}
}
