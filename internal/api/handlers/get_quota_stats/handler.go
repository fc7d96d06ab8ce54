package get_quota_stats

import (
	"net/http"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

const msgUnknownLocation = "неизвестная локация"

type Handler struct {
	service QuotaService
	logger  Logger
}

func NewHandler(service QuotaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/quotas/stats?location=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var location *domain.Location
	if locationStr := r.URL.Query().Get("location"); locationStr != "" {
		parsed, ok := domain.ParseLocation(locationStr)
		if !ok {
			h.logger.Warn("GET /admin/quotas/stats - Unknown location: %s", locationStr)
			handlers.RespondBadRequest(w, msgUnknownLocation)
			return
		}
		location = &parsed
	}

	stats, err := h.service.Stats(r.Context(), location)
	if err != nil {
		h.logger.Error("GET /admin/quotas/stats - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainStats(stats))
}
