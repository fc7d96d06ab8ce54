package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

// QuotaLedger интерфейс ledger-а квот
type QuotaLedger interface {
	Reserve(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error)
	Release(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Save(ctx context.Context, o *domain.Order) (*domain.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
