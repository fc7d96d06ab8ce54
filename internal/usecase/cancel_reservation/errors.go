package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrOrderNotFound возвращается, когда заказ не существует
	ErrOrderNotFound = errors.New("cancel_reservation: order not found")

	// ErrAccessDenied возвращается при попытке отменить чужой заказ
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
