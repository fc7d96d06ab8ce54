package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

// QuotaLedger интерфейс ledger-а квот
type QuotaLedger interface {
	Release(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
