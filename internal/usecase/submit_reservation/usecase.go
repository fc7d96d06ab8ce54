// Package submit_reservation оформляет заявку на выходные: атомарно по группе дат
// резервирует места в ledger-е квот и сохраняет заказ
package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	quotaService "github.com/m04kA/SMC-WeekendService/internal/service/quota"
)

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

// Execute проводит заявку по принципу "все даты или ни одной".
// Резервирует даты по очереди; при отказе на любой из них откатывает
// уже сделанные резервы компенсирующими Release и возвращает DatesUnavailableError.
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	dates := normalizeDates(req.Dates)

	u.logger.Info("Execute: submitting reservation for user=%s location=%s role=%s dates=%d",
		req.UserID, req.Location, req.Role, len(dates))

	reserved := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if _, err := u.ledger.Reserve(ctx, req.Location, req.Role, d); err != nil {
			u.releaseAll(ctx, req.Location, req.Role, reserved)

			switch {
			case errors.Is(err, quotaService.ErrQuotaExhausted):
				u.logger.Warn("Execute: date %s exhausted for location=%s role=%s, rolled back %d reservations",
					d.Format(domain.DateFormat), req.Location, req.Role, len(reserved))
				return nil, &DatesUnavailableError{Dates: []time.Time{d}}
			case errors.Is(err, quotaService.ErrQuotaNotConfigured):
				return nil, ErrQuotaNotConfigured
			default:
				u.logger.Error("Execute: reserve failed for date %s: %v", d.Format(domain.DateFormat), err)
				return nil, fmt.Errorf("%w: Execute - reserve failed: %v", ErrInternal, err)
			}
		}
		reserved = append(reserved, d)
	}

	order := &domain.Order{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		FullName:   req.FullName,
		EmployeeID: req.EmployeeID,
		Location:   req.Location,
		Role:       req.Role,
		Dates:      dates,
		Status:     domain.OrderStatusPending,
	}

	saved, err := u.orders.Save(ctx, order)
	if err != nil {
		u.releaseAll(ctx, req.Location, req.Role, reserved)
		u.logger.Error("Execute: failed to save order for user=%s, reservations rolled back: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Execute - save order: %v", ErrInternal, err)
	}

	u.logger.Info("Execute: order id=%s created for user=%s", saved.ID, req.UserID)
	return &Response{OrderID: saved.ID, Order: saved}, nil
}

// releaseAll компенсирует уже сделанные резервы. Ошибки компенсации не
// прерывают откат, каждая логируется отдельно.
func (u *Usecase) releaseAll(ctx context.Context, location domain.Location, role domain.Role, dates []time.Time) {
	for _, d := range dates {
		if _, err := u.ledger.Release(ctx, location, role, d); err != nil {
			u.logger.Error("releaseAll: failed to release date %s for location=%s role=%s: %v",
				d.Format(domain.DateFormat), location, role, err)
		}
	}
}

func normalizeDates(dates []time.Time) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		out[i] = domain.DateOnly(d)
	}
	return out
}
