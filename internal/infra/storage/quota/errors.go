package quota

import "errors"

var (
	// ErrConfigNotFound возвращается, когда квота для (локация, должность) не настроена
	ErrConfigNotFound = errors.New("quota.repository: quota config not found")

	// ErrCounterNotFound возвращается, когда счётчик на дату ещё не материализован
	ErrCounterNotFound = errors.New("quota.repository: quota counter not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("quota.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("quota.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("quota.repository: failed to scan row")
)
