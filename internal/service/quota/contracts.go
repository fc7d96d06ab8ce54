package quota

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	storage "github.com/m04kA/SMC-WeekendService/internal/infra/storage/quota"
)

// QuotaRepository интерфейс репозитория квот
type QuotaRepository interface {
	GetConfig(ctx context.Context, location domain.Location, role domain.Role) (*domain.QuotaConfig, error)
	ListConfigs(ctx context.Context, location *domain.Location) ([]*domain.QuotaConfig, error)
	UpsertConfig(ctx context.Context, location domain.Location, role domain.Role, dailyQuota int) (*domain.QuotaConfig, error)
	SeedConfig(ctx context.Context, location domain.Location, role domain.Role, dailyQuota int) error
	GetCounter(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error)
	CreateCounter(ctx context.Context, location domain.Location, role domain.Role, date time.Time, total int) error
	IncrementUsed(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (int64, error)
	DecrementUsed(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (int64, error)
	ListCountersInRange(ctx context.Context, location domain.Location, role domain.Role, from, to time.Time) ([]*domain.QuotaCounter, error)
	AggregateUsage(ctx context.Context, location *domain.Location) ([]storage.UsageRow, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
