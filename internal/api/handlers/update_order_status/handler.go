package update_order_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	ordersService "github.com/m04kA/SMC-WeekendService/internal/service/orders"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус заказа"
	msgOrderNotFound      = "заказ не найден"
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

// Handle PATCH /api/v1/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var req UpdateOrderStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("PATCH /orders/{orderId}/status - Invalid status: order_id=%s, status=%s",
				orderID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{orderId}/status - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		default:
			h.logger.Error("PATCH /orders/{orderId}/status - Failed: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{orderId}/status - Updated: order_id=%s, status=%s", orderID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateOrderStatusResponse{OrderID: orderID, Status: req.Status})
}
