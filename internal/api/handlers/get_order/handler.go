package get_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/api/middleware"
	ordersService "github.com/m04kA/SMC-WeekendService/internal/service/orders"
)

const (
	msgUnauthorized  = "не указан идентификатор пользователя"
	msgOrderNotFound = "заказ не найден"
	msgAccessDenied  = "нет доступа к этому заказу"
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

// Handle GET /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	orderID := mux.Vars(r)["orderId"]

	result, err := h.service.GetByID(r.Context(), orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{orderId} - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("GET /orders/{orderId} - Access denied: user_id=%s, order_id=%s", userID, orderID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /orders/{orderId} - Failed: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
