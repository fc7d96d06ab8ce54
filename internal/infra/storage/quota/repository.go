package quota

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	"github.com/m04kA/SMC-WeekendService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WeekendService/pkg/psqlbuilder"
)

// Repository репозиторий квот: конфигурация дневных квот и счётчики по датам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория квот
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает дневную квоту для (локация, должность)
func (r *Repository) GetConfig(ctx context.Context, location domain.Location, role domain.Role) (*domain.QuotaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"location",
		"role",
		"daily_quota",
		"created_at",
		"updated_at",
	).
		From("quota_config").
		Where(squirrel.Eq{"location": location, "role": role}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.QuotaConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.Location,
		&config.Role,
		&config.DailyQuota,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// ListConfigs получает квоты всех должностей, опционально для одной локации
func (r *Repository) ListConfigs(ctx context.Context, location *domain.Location) ([]*domain.QuotaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"location",
		"role",
		"daily_quota",
		"created_at",
		"updated_at",
	).
		From("quota_config").
		OrderBy("location ASC, role ASC")

	if location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": *location})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfigs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfigs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.QuotaConfig, 0)
	for rows.Next() {
		var config domain.QuotaConfig
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&config.Location,
			&config.Role,
			&config.DailyQuota,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListConfigs - scan row: %v", ErrScanRow, err)
		}

		config.CreatedAt = createdAt.Time
		config.UpdatedAt = updatedAt.Time
		configs = append(configs, &config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfigs - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// UpsertConfig устанавливает дневную квоту для (локация, должность)
// Уже материализованные счётчики не пересчитываются: новая квота
// применяется только к датам, материализуемым после обновления
func (r *Repository) UpsertConfig(ctx context.Context, location domain.Location, role domain.Role, dailyQuota int) (*domain.QuotaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("quota_config").
		Columns("location", "role", "daily_quota").
		Values(location, role, dailyQuota).
		Suffix("ON CONFLICT (location, role) DO UPDATE SET daily_quota = EXCLUDED.daily_quota, updated_at = NOW() RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - execute upsert: %v", ErrExecQuery, err)
	}

	return &domain.QuotaConfig{
		Location:   location,
		Role:       role,
		DailyQuota: dailyQuota,
		CreatedAt:  createdAt.Time,
		UpdatedAt:  updatedAt.Time,
	}, nil
}

// SeedConfig создает квоту, если её ещё нет (первый запуск сервиса)
// Существующие значения не перезаписываются
func (r *Repository) SeedConfig(ctx context.Context, location domain.Location, role domain.Role, dailyQuota int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("quota_config").
		Columns("location", "role", "daily_quota").
		Values(location, role, dailyQuota).
		Suffix("ON CONFLICT (location, role) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SeedConfig - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedConfig - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetCounter получает счётчик на конкретную дату
func (r *Repository) GetCounter(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"location",
		"role",
		"date",
		"total",
		"used",
		"created_at",
		"updated_at",
	).
		From("quota_counters").
		Where(squirrel.Eq{"location": location, "role": role, "date": domain.DateOnly(date)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCounter - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCounter(executor.QueryRowContext(ctx, query, args...))
}

// CreateCounter материализует счётчик на дату с нулевым использованием
// Если счётчик уже существует, вставка молча пропускается
func (r *Repository) CreateCounter(ctx context.Context, location domain.Location, role domain.Role, date time.Time, total int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("quota_counters").
		Columns("location", "role", "date", "total", "used").
		Values(location, role, domain.DateOnly(date), total, 0).
		Suffix("ON CONFLICT (location, role, date) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateCounter - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateCounter - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// IncrementUsed атомарно занимает одно место на дату
// Условие used < total в WHERE сериализует конкурентные бронирования
// на одном счётчике: при исчерпании квоты запрос не затрагивает строк
func (r *Repository) IncrementUsed(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("quota_counters").
		Set("used", squirrel.Expr("used + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"location": location, "role": role, "date": domain.DateOnly(date)}).
		Where(squirrel.Expr("used < total")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: IncrementUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementUsed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DecrementUsed атомарно освобождает одно место на дату
// Условие used > 0 не даёт счётчику уйти в минус
func (r *Repository) DecrementUsed(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("quota_counters").
		Set("used", squirrel.Expr("used - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"location": location, "role": role, "date": domain.DateOnly(date)}).
		Where(squirrel.Expr("used > 0")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DecrementUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DecrementUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DecrementUsed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// ListCountersInRange получает материализованные счётчики в интервале [from, to)
func (r *Repository) ListCountersInRange(ctx context.Context, location domain.Location, role domain.Role, from, to time.Time) ([]*domain.QuotaCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"location",
		"role",
		"date",
		"total",
		"used",
		"created_at",
		"updated_at",
	).
		From("quota_counters").
		Where(squirrel.Eq{"location": location, "role": role}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(from)}).
		Where(squirrel.Lt{"date": domain.DateOnly(to)}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCountersInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCountersInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counters := make([]*domain.QuotaCounter, 0)
	for rows.Next() {
		var counter domain.QuotaCounter
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&counter.Location,
			&counter.Role,
			&counter.Date,
			&counter.Total,
			&counter.Used,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListCountersInRange - scan row: %v", ErrScanRow, err)
		}

		counter.CreatedAt = createdAt.Time
		counter.UpdatedAt = updatedAt.Time
		counters = append(counters, &counter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCountersInRange - rows error: %v", ErrScanRow, err)
	}

	return counters, nil
}

// UsageRow агрегированное использование квот по (локация, должность)
type UsageRow struct {
	Location       domain.Location
	Role           domain.Role
	TotalUsed      int
	TotalAvailable int
}

// AggregateUsage суммирует занятые и свободные места по всем материализованным датам
func (r *Repository) AggregateUsage(ctx context.Context, location *domain.Location) ([]UsageRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"location",
		"role",
		"COALESCE(SUM(used), 0)",
		"COALESCE(SUM(total - used), 0)",
	).
		From("quota_counters").
		GroupBy("location", "role").
		OrderBy("location ASC, role ASC")

	if location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": *location})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AggregateUsage - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: AggregateUsage - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	usage := make([]UsageRow, 0)
	for rows.Next() {
		var row UsageRow
		if err := rows.Scan(&row.Location, &row.Role, &row.TotalUsed, &row.TotalAvailable); err != nil {
			return nil, fmt.Errorf("%w: AggregateUsage - scan row: %v", ErrScanRow, err)
		}
		usage = append(usage, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: AggregateUsage - rows error: %v", ErrScanRow, err)
	}

	return usage, nil
}

// scanCounter сканирует одну строку счётчика
func (r *Repository) scanCounter(row *sql.Row) (*domain.QuotaCounter, error) {
	var counter domain.QuotaCounter
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&counter.Location,
		&counter.Role,
		&counter.Date,
		&counter.Total,
		&counter.Used,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCounterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanCounter - scan counter: %v", ErrScanRow, err)
	}

	counter.CreatedAt = createdAt.Time
	counter.UpdatedAt = updatedAt.Time

	return &counter, nil
}
