package wizard

import (
	"context"

	"github.com/m04kA/SMC-WeekendService/internal/service/orders/models"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/submit_reservation"
)

// Submitter оформляет завершённый черновик заявки
type Submitter interface {
	Execute(ctx context.Context, req submit_reservation.Request) (*submit_reservation.Response, error)
}

// Canceller отменяет существующий заказ
type Canceller interface {
	Execute(ctx context.Context, req cancel_reservation.Request) (*cancel_reservation.Response, error)
}

// DatesProvider возвращает даты со свободными местами
type DatesProvider interface {
	Execute(ctx context.Context, req get_available_dates.Request) (*get_available_dates.Response, error)
}

// OrdersReader читает историю заказов пользователя
type OrdersReader interface {
	ListByUser(ctx context.Context, userID string) (*models.OrderListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
