package get_available_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrQuotaNotConfigured возвращается, когда для (локация, должность) не настроена квота
	ErrQuotaNotConfigured = errors.New("get_available_dates: quota is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_dates: internal error")
)
