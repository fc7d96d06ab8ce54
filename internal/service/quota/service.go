package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	storage "github.com/m04kA/SMC-WeekendService/internal/infra/storage/quota"
)

// Service ledger квот выходных: единственный владелец счётчиков (локация, дата, должность)
// Все мутации одного счётчика сериализуются на уровне БД (условные UPDATE),
// ленивое создание счётчиков выполняется в serializable-транзакции
type Service struct {
	quotaRepo QuotaRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр ledger-а квот
func NewService(quotaRepo QuotaRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		quotaRepo: quotaRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetCounter получает счётчик на дату, лениво материализуя его из конфигурации квот
func (s *Service) GetCounter(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	var counter *domain.QuotaCounter

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		counter, err = s.ensureCounter(txCtx, location, role, date)
		return err
	})

	if err != nil {
		return nil, err
	}
	return counter, nil
}

// Reserve атомарно занимает одно место на дату
// При исчерпании квоты счётчик не изменяется и возвращается ErrQuotaExhausted
func (s *Service) Reserve(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	var counter *domain.QuotaCounter

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.ensureCounter(txCtx, location, role, date); err != nil {
			return err
		}

		rowsAffected, err := s.quotaRepo.IncrementUsed(txCtx, location, role, date)
		if err != nil {
			s.logger.Error("Reserve: failed to increment counter %s/%s/%s: %v",
				location, role, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: Reserve - repository error: %v", ErrInternal, err)
		}
		if rowsAffected == 0 {
			return ErrQuotaExhausted
		}

		counter, err = s.quotaRepo.GetCounter(txCtx, location, role, date)
		if err != nil {
			return fmt.Errorf("%w: Reserve - reload counter: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrQuotaExhausted) {
			s.logger.Warn("Reserve: quota exhausted for %s/%s/%s",
				location, role, date.Format(domain.DateFormat))
		}
		return nil, err
	}

	s.logger.Info("Reserve: reserved spot for %s/%s/%s, used=%d/%d",
		location, role, date.Format(domain.DateFormat), counter.Used, counter.Total)
	return counter, nil
}

// Release атомарно освобождает одно место на дату
// Если активных бронирований нет, счётчик не изменяется и возвращается ErrNothingToRelease
func (s *Service) Release(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	var counter *domain.QuotaCounter

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rowsAffected, err := s.quotaRepo.DecrementUsed(txCtx, location, role, date)
		if err != nil {
			s.logger.Error("Release: failed to decrement counter %s/%s/%s: %v",
				location, role, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
		}
		if rowsAffected == 0 {
			return ErrNothingToRelease
		}

		counter, err = s.quotaRepo.GetCounter(txCtx, location, role, date)
		if err != nil {
			return fmt.Errorf("%w: Release - reload counter: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNothingToRelease) {
			s.logger.Warn("Release: nothing to release for %s/%s/%s",
				location, role, date.Format(domain.DateFormat))
		}
		return nil, err
	}

	s.logger.Info("Release: released spot for %s/%s/%s, used=%d/%d",
		location, role, date.Format(domain.DateFormat), counter.Used, counter.Total)
	return counter, nil
}

// ListAvailableDates возвращает в хронологическом порядке даты интервала
// [from, from+windowDays) со свободными местами
// Нематериализованные даты считаются свободными, если дневная квота больше нуля
func (s *Service) ListAvailableDates(ctx context.Context, location domain.Location, role domain.Role, from time.Time, windowDays int) ([]time.Time, error) {
	if windowDays <= 0 || windowDays > domain.MaxWindowDays {
		return nil, fmt.Errorf("%w: windowDays must be in range 1..%d", ErrInvalidInput, domain.MaxWindowDays)
	}

	config, err := s.quotaRepo.GetConfig(ctx, location, role)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			return nil, ErrQuotaNotConfigured
		}
		s.logger.Error("ListAvailableDates: failed to get config for %s/%s: %v", location, role, err)
		return nil, fmt.Errorf("%w: ListAvailableDates - repository error: %v", ErrInternal, err)
	}

	fromDate := domain.DateOnly(from)
	toDate := fromDate.AddDate(0, 0, windowDays)

	counters, err := s.quotaRepo.ListCountersInRange(ctx, location, role, fromDate, toDate)
	if err != nil {
		s.logger.Error("ListAvailableDates: failed to list counters for %s/%s: %v", location, role, err)
		return nil, fmt.Errorf("%w: ListAvailableDates - repository error: %v", ErrInternal, err)
	}

	materialized := make(map[string]*domain.QuotaCounter, len(counters))
	for _, counter := range counters {
		materialized[counter.Date.Format(domain.DateFormat)] = counter
	}

	available := make([]time.Time, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		date := fromDate.AddDate(0, 0, i)
		if counter, ok := materialized[date.Format(domain.DateFormat)]; ok {
			if counter.Available() > 0 {
				available = append(available, date)
			}
			continue
		}
		if config.DailyQuota > 0 {
			available = append(available, date)
		}
	}

	return available, nil
}

// Stats возвращает агрегированную статистику квот по должностям,
// просуммированную по всем материализованным датам
// Если location == nil, статистика собирается по всем локациям
func (s *Service) Stats(ctx context.Context, location *domain.Location) ([]*domain.LocationStats, error) {
	configs, err := s.quotaRepo.ListConfigs(ctx, location)
	if err != nil {
		s.logger.Error("Stats: failed to list configs: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	usage, err := s.quotaRepo.AggregateUsage(ctx, location)
	if err != nil {
		s.logger.Error("Stats: failed to aggregate usage: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	usageByKey := make(map[string]storage.UsageRow, len(usage))
	for _, row := range usage {
		usageByKey[string(row.Location)+"/"+string(row.Role)] = row
	}

	byLocation := make(map[domain.Location]*domain.LocationStats)
	order := make([]domain.Location, 0)

	for _, config := range configs {
		stats, ok := byLocation[config.Location]
		if !ok {
			stats = &domain.LocationStats{
				Location: config.Location,
				Roles:    make(map[domain.Role]domain.RoleStats),
			}
			byLocation[config.Location] = stats
			order = append(order, config.Location)
		}

		row := usageByKey[string(config.Location)+"/"+string(config.Role)]
		stats.Roles[config.Role] = domain.RoleStats{
			DailyQuota:     config.DailyQuota,
			TotalUsed:      row.TotalUsed,
			TotalAvailable: row.TotalAvailable,
		}
	}

	result := make([]*domain.LocationStats, 0, len(order))
	for _, loc := range order {
		result = append(result, byLocation[loc])
	}

	return result, nil
}

// UpdateDailyQuota изменяет дневную квоту для (локация, должность)
// Уже материализованные счётчики сохраняют прежний total: квота не может
// уменьшиться ниже уже использованной ёмкости; новые даты получают новое значение
func (s *Service) UpdateDailyQuota(ctx context.Context, location domain.Location, role domain.Role, newTotal int) (*domain.QuotaConfig, error) {
	if newTotal < domain.MinDailyQuota || newTotal > domain.MaxDailyQuota {
		return nil, fmt.Errorf("%w: daily quota must be in range %d..%d",
			ErrInvalidInput, domain.MinDailyQuota, domain.MaxDailyQuota)
	}

	config, err := s.quotaRepo.UpsertConfig(ctx, location, role, newTotal)
	if err != nil {
		s.logger.Error("UpdateDailyQuota: failed to upsert config %s/%s: %v", location, role, err)
		return nil, fmt.Errorf("%w: UpdateDailyQuota - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDailyQuota: set quota %s/%s to %d", location, role, newTotal)
	return config, nil
}

// SeedDefaults создает отсутствующие квоты из конфигурации сервиса
// Существующие значения не перезаписываются
func (s *Service) SeedDefaults(ctx context.Context, defaults map[string]map[string]int) error {
	for locationID, roles := range defaults {
		location, ok := domain.ParseLocation(locationID)
		if !ok {
			s.logger.Warn("SeedDefaults: unknown location %q in defaults, skipping", locationID)
			continue
		}
		for roleID, quota := range roles {
			role, ok := domain.ParseRole(roleID)
			if !ok {
				s.logger.Warn("SeedDefaults: unknown role %q in defaults, skipping", roleID)
				continue
			}
			if err := s.quotaRepo.SeedConfig(ctx, location, role, quota); err != nil {
				return fmt.Errorf("%w: SeedDefaults - repository error: %v", ErrInternal, err)
			}
		}
	}

	s.logger.Info("SeedDefaults: quota configuration seeded")
	return nil
}

// ResetQuotas принудительно возвращает все квоты к значениям по умолчанию
func (s *Service) ResetQuotas(ctx context.Context, defaults map[string]map[string]int) error {
	for locationID, roles := range defaults {
		location, ok := domain.ParseLocation(locationID)
		if !ok {
			s.logger.Warn("ResetQuotas: unknown location %q in defaults, skipping", locationID)
			continue
		}
		for roleID, quota := range roles {
			role, ok := domain.ParseRole(roleID)
			if !ok {
				s.logger.Warn("ResetQuotas: unknown role %q in defaults, skipping", roleID)
				continue
			}
			if _, err := s.quotaRepo.UpsertConfig(ctx, location, role, quota); err != nil {
				return fmt.Errorf("%w: ResetQuotas - repository error: %v", ErrInternal, err)
			}
		}
	}

	s.logger.Info("ResetQuotas: quotas reset to defaults")
	return nil
}

// ensureCounter материализует счётчик на дату, если его ещё нет
func (s *Service) ensureCounter(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	counter, err := s.quotaRepo.GetCounter(ctx, location, role, date)
	if err == nil {
		return counter, nil
	}
	if !errors.Is(err, storage.ErrCounterNotFound) {
		return nil, fmt.Errorf("%w: ensureCounter - get counter: %v", ErrInternal, err)
	}

	config, err := s.quotaRepo.GetConfig(ctx, location, role)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			return nil, ErrQuotaNotConfigured
		}
		return nil, fmt.Errorf("%w: ensureCounter - get config: %v", ErrInternal, err)
	}

	if err := s.quotaRepo.CreateCounter(ctx, location, role, date, config.DailyQuota); err != nil {
		return nil, fmt.Errorf("%w: ensureCounter - create counter: %v", ErrInternal, err)
	}

	counter, err = s.quotaRepo.GetCounter(ctx, location, role, date)
	if err != nil {
		return nil, fmt.Errorf("%w: ensureCounter - reload counter: %v", ErrInternal, err)
	}

	return counter, nil
}
