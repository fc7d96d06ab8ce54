package list_orders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	ordersService "github.com/m04kA/SMC-WeekendService/internal/service/orders"
)

const (
	defaultLimit = 20

	msgInvalidParams = "некорректные параметры пагинации"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/orders?limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := uint64(defaultLimit)
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/orders - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		limit = parsed
	}

	var offset uint64
	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsed, err := strconv.ParseUint(offsetStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/orders - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		offset = parsed
	}

	result, err := h.service.ListAll(r.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, ordersService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/orders - Invalid params: limit=%d, offset=%d", limit, offset)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/orders - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/orders - Found %d orders: limit=%d, offset=%d", result.Total, limit, offset)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result, limit, offset))
}
