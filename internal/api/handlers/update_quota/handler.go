package update_quota

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/domain"
	quotaService "github.com/m04kA/SMC-WeekendService/internal/service/quota"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownLocation    = "неизвестная локация"
	msgUnknownRole        = "неизвестная должность"
	msgInvalidQuota       = "некорректное значение дневной квоты"
)

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

// Handle PUT /api/v1/admin/quotas/{location}/{role}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	location, ok := domain.ParseLocation(vars["location"])
	if !ok {
		h.logger.Warn("PUT /admin/quotas - Unknown location: %s", vars["location"])
		handlers.RespondBadRequest(w, msgUnknownLocation)
		return
	}

	role, ok := domain.ParseRole(vars["role"])
	if !ok {
		h.logger.Warn("PUT /admin/quotas - Unknown role: %s", vars["role"])
		handlers.RespondBadRequest(w, msgUnknownRole)
		return
	}

	var req UpdateQuotaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/quotas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDailyQuota(r.Context(), location, role, req.DailyQuota)
	if err != nil {
		if errors.Is(err, quotaService.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/quotas - Invalid quota: location=%s, role=%s, quota=%d",
				location, role, req.DailyQuota)
			handlers.RespondBadRequest(w, msgInvalidQuota)
			return
		}
		h.logger.Error("PUT /admin/quotas - Failed: location=%s, role=%s, error=%v", location, role, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/quotas - Updated: location=%s, role=%s, quota=%d", location, role, req.DailyQuota)
	handlers.RespondJSON(w, http.StatusOK, FromDomainConfig(result))
}
