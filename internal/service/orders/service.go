package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	orderRepo "github.com/m04kA/SMC-WeekendService/internal/infra/storage/order"
	"github.com/m04kA/SMC-WeekendService/internal/service/orders/models"
)

// Service сервис для чтения и администрирования заказов выходных
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetByID получает заказ по ID
// Пользователь может видеть только собственный заказ
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%s for user=%s", id, userID)

	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%s not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if o.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to order id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOrder(o), nil
}

// ListByUser получает историю заказов пользователя, новые первыми
func (s *Service) ListByUser(ctx context.Context, userID string) (*models.OrderListResponse, error) {
	s.logger.Info("ListByUser: fetching orders for user=%s", userID)

	list, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: fetched %d orders for user=%s", len(list), userID)
	return models.FromDomainOrderList(list), nil
}

// ListAll получает страницу всех заказов для админ-панели, новые первыми
func (s *Service) ListAll(ctx context.Context, limit, offset uint64) (*models.OrderListResponse, error) {
	if limit == 0 || limit > 100 {
		return nil, fmt.Errorf("%w: limit must be in range 1..100", ErrInvalidInput)
	}

	s.logger.Info("ListAll: fetching orders limit=%d offset=%d", limit, offset)

	list, err := s.orderRepo.ListAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrderList(list), nil
}

// UpdateStatus обновляет статус заказа (админ-операция)
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	newStatus, ok := domain.ParseOrderStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for order id=%s", status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("UpdateStatus: order id=%s not found", id)
			return ErrOrderNotFound
		}
		s.logger.Error("UpdateStatus: repository error for order id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: order id=%s updated to status=%s", id, newStatus)
	return nil
}
