package reset_quotas

import (
	"net/http"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
)

type Handler struct {
	service  QuotaService
	defaults map[string]map[string]int
	logger   Logger
}

// NewHandler создает handler сброса квот
// defaults значения квот из конфигурации сервиса
func NewHandler(service QuotaService, defaults map[string]map[string]int, logger Logger) *Handler {
	return &Handler{
		service:  service,
		defaults: defaults,
		logger:   logger,
	}
}

// ResetQuotasResponse HTTP response model
type ResetQuotasResponse struct {
	Reset bool `json:"reset"`
}

// Handle POST /api/v1/admin/quotas/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetQuotas(r.Context(), h.defaults); err != nil {
		h.logger.Error("POST /admin/quotas/reset - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/quotas/reset - Quotas reset to defaults")
	handlers.RespondJSON(w, http.StatusOK, ResetQuotasResponse{Reset: true})
}
