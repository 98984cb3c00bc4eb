package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireInternalJobToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("unconfigured token rejects with 503", func(t *testing.T) {
		handler := RequireInternalJobToken("", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}
	})

	t.Run("missing header rejects with 401", func(t *testing.T) {
		handler := RequireInternalJobToken("job-token", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("wrong token rejects with 401", func(t *testing.T) {
		handler := RequireInternalJobToken("job-token", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync", nil)
		req.Header.Set("X-Internal-Job-Token", "other-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("matching token passes through", func(t *testing.T) {
		handler := RequireInternalJobToken("job-token", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync", nil)
		req.Header.Set("X-Internal-Job-Token", "job-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})
}
