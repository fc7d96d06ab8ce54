package get_quota_stats

import (
	"context"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

type QuotaService interface {
	Stats(ctx context.Context, location *domain.Location) ([]*domain.LocationStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
