package cancel_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/api/middleware"
	cancelReservation "github.com/m04kA/SMC-WeekendService/internal/usecase/cancel_reservation"
)

const (
	msgUnauthorized  = "не указан идентификатор пользователя"
	msgOrderNotFound = "заказ не найден"
	msgAccessDenied  = "нет доступа к этому заказу"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	orderID := mux.Vars(r)["orderId"]

	result, err := h.useCase.Execute(r.Context(), cancelReservation.Request{
		OrderID: orderID,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrOrderNotFound):
			h.logger.Warn("POST /orders/{orderId}/cancel - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("POST /orders/{orderId}/cancel - Access denied: user_id=%s, order_id=%s", userID, orderID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /orders/{orderId}/cancel - Invalid input: order_id=%s, error=%v", orderID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /orders/{orderId}/cancel - Failed: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/{orderId}/cancel - Cancelled: order_id=%s, user_id=%s", orderID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
