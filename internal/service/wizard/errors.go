package wizard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных запроса
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
