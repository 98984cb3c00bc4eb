package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/neuproject/sports-calendar/internal/usecase"
)

func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCalendar")
	defer span.End()

	year, err := requiredIntQuery(r, "year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	month, err := requiredIntQuery(r, "month")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	memberUID := strings.TrimSpace(r.URL.Query().Get("memberUid"))

	rows, err := h.matchService.Calendar(ctx, usecase.CalendarQuery{
		Year:      year,
		Month:     month,
		MemberUID: memberUID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get calendar failed", "year", year, "month", month, "member_uid", memberUID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(rows))
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	days := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: days must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		days = v
	}
	memberUID := strings.TrimSpace(r.URL.Query().Get("memberUid"))

	rows, err := h.matchService.Recent(ctx, usecase.RecentQuery{
		Days:      days,
		MemberUID: memberUID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list recent matches failed", "days", days, "member_uid", memberUID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(rows))
}

func requiredIntQuery(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
