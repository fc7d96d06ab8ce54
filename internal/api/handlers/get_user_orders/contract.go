package get_user_orders

import (
	"context"

	"github.com/m04kA/SMC-WeekendService/internal/service/orders/models"
)

type OrdersService interface {
	ListByUser(ctx context.Context, userID string) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
