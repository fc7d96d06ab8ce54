package submit_reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректном черновике
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrQuotaNotConfigured возвращается, когда для (локация, должность) не настроена квота
	ErrQuotaNotConfigured = errors.New("submit_reservation: quota is not configured")

	// ErrDatesUnavailable сентинел для errors.Is: часть дат недоступна
	ErrDatesUnavailable = errors.New("submit_reservation: dates are not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)

// DatesUnavailableError ошибка бронирования с перечнем недоступных дат
// Совместима с errors.Is(err, ErrDatesUnavailable)
type DatesUnavailableError struct {
	Dates []time.Time
}

func (e *DatesUnavailableError) Error() string {
	formatted := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		formatted[i] = d.Format(domain.DateFormat)
	}
	return fmt.Sprintf("submit_reservation: dates not available: %s", strings.Join(formatted, ", "))
}

// Is поддерживает сопоставление с сентинелом ErrDatesUnavailable
func (e *DatesUnavailableError) Is(target error) bool {
	return target == ErrDatesUnavailable
}
