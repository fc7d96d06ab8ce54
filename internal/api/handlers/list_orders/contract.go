package list_orders

import (
	"context"

	"github.com/m04kA/SMC-WeekendService/internal/service/orders/models"
)

type OrdersService interface {
	ListAll(ctx context.Context, limit, offset uint64) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
