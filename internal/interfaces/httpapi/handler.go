package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

type Handler struct {
	matchService *usecase.MatchService
	teamService  *usecase.TeamService
	syncService  *usecase.SyncService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService: matchService,
		teamService:  teamService,
		syncService:  syncService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
