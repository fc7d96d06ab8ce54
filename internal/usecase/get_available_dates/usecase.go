// Package get_available_dates возвращает ближайшие даты со свободными местами
// для пары (локация, должность)
package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	quotaService "github.com/m04kA/SMC-WeekendService/internal/service/quota"
)

// Request запрос доступных дат
// Days == 0 заменяется окном по умолчанию
type Request struct {
	Location string
	Role     string
	From     time.Time
	Days     int
}

// Response даты со свободными местами в хронологическом порядке
type Response struct {
	Location string
	Role     string
	Dates    []string
}

type Usecase struct {
	ledger QuotaLedger
	logger Logger
}

func New(ledger QuotaLedger, logger Logger) *Usecase {
	return &Usecase{
		ledger: ledger,
		logger: logger,
	}
}

// Execute возвращает даты интервала [from, from+days) со свободными местами
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	location, ok := domain.ParseLocation(req.Location)
	if !ok {
		return nil, fmt.Errorf("%w: unknown location %q", ErrInvalidInput, req.Location)
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultWindowDays
	}
	if days < 0 || days > domain.MaxWindowDays {
		return nil, fmt.Errorf("%w: days must be in range 1..%d", ErrInvalidInput, domain.MaxWindowDays)
	}

	from := req.From
	if from.IsZero() {
		from = time.Now().UTC()
	}

	dates, err := u.ledger.ListAvailableDates(ctx, location, role, from, days)
	if err != nil {
		switch {
		case errors.Is(err, quotaService.ErrQuotaNotConfigured):
			return nil, ErrQuotaNotConfigured
		case errors.Is(err, quotaService.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			u.logger.Error("Execute: failed to list available dates for %s/%s: %v", location, role, err)
			return nil, fmt.Errorf("%w: Execute - ledger error: %v", ErrInternal, err)
		}
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(domain.DateFormat)
	}

	return &Response{
		Location: string(location),
		Role:     string(role),
		Dates:    formatted,
	}, nil
}
