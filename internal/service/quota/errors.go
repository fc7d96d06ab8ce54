package quota

import "errors"

var (
	// ErrQuotaExhausted возвращается, когда на дату не осталось свободных мест
	ErrQuotaExhausted = errors.New("quota: no available spots for this date")

	// ErrNothingToRelease возвращается при попытке освободить место на дату без бронирований
	ErrNothingToRelease = errors.New("quota: no reservations to release for this date")

	// ErrQuotaNotConfigured возвращается, когда для (локация, должность) не настроена квота
	ErrQuotaNotConfigured = errors.New("quota: quota is not configured for this location and role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quota: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("quota: internal error")
)
