package get_user_orders

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/api/middleware"
)

const (
	msgUnauthorized = "не указан идентификатор пользователя"
	msgAccessDenied = "нет доступа к заказам другого пользователя"
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

// Handle GET /api/v1/users/{userId}/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != authUserID {
		h.logger.Warn("GET /users/{userId}/orders - Access denied: auth_user=%s, requested_user=%s",
			authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/orders - Failed: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/orders - Found %d orders: user_id=%s", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
