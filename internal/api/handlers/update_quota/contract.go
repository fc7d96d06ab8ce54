package update_quota

import (
	"context"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

type QuotaService interface {
	UpdateDailyQuota(ctx context.Context, location domain.Location, role domain.Role, newTotal int) (*domain.QuotaConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
