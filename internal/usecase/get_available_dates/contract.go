package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

// QuotaLedger интерфейс ledger-а квот
type QuotaLedger interface {
	ListAvailableDates(ctx context.Context, location domain.Location, role domain.Role, from time.Time, windowDays int) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
