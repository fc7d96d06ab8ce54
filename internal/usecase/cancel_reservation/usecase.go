// Package cancel_reservation отменяет заявку: возвращает места в ledger квот
// и удаляет заказ
package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	orderRepo "github.com/m04kA/SMC-WeekendService/internal/infra/storage/order"
)

// Request запрос на отмену заявки
type Request struct {
	OrderID string
	UserID  string
}

// Response результат отмены.
// FailedReleases содержит даты, для которых не удалось вернуть место,
// заказ при этом всё равно удаляется.
type Response struct {
	OrderID        string
	ReleasedDates  []time.Time
	FailedReleases []time.Time
}

type Usecase struct {
	ledger QuotaLedger
	orders OrderRepository
	logger Logger
}

func New(ledger QuotaLedger, orders OrderRepository, logger Logger) *Usecase {
	return &Usecase{
		ledger: ledger,
		orders: orders,
		logger: logger,
	}
}

// Execute отменяет заявку пользователя.
// Сбои возврата отдельных дат не блокируют удаление заказа: аномалия
// логируется и попадает в Response.FailedReleases.
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u.logger.Info("Execute: cancelling order id=%s for user=%s", req.OrderID, req.UserID)

	order, err := u.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			u.logger.Warn("Execute: order id=%s not found", req.OrderID)
			return nil, ErrOrderNotFound
		}
		u.logger.Error("Execute: failed to load order id=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: Execute - load order: %v", ErrInternal, err)
	}

	if order.UserID != req.UserID {
		u.logger.Warn("Execute: access denied for user=%s to order id=%s", req.UserID, req.OrderID)
		return nil, ErrAccessDenied
	}

	resp := &Response{OrderID: order.ID}
	for _, d := range order.Dates {
		if _, err := u.ledger.Release(ctx, order.Location, order.Role, d); err != nil {
			u.logger.Warn("Execute: failed to release date %s for order id=%s: %v",
				d.Format(domain.DateFormat), order.ID, err)
			resp.FailedReleases = append(resp.FailedReleases, d)
			continue
		}
		resp.ReleasedDates = append(resp.ReleasedDates, d)
	}

	if err := u.orders.Delete(ctx, order.ID); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			u.logger.Warn("Execute: order id=%s disappeared before delete", order.ID)
			return nil, ErrOrderNotFound
		}
		u.logger.Error("Execute: failed to delete order id=%s: %v", order.ID, err)
		return nil, fmt.Errorf("%w: Execute - delete order: %v", ErrInternal, err)
	}

	u.logger.Info("Execute: order id=%s cancelled, released=%d failed=%d",
		order.ID, len(resp.ReleasedDates), len(resp.FailedReleases))
	return resp, nil
}
