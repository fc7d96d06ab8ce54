package submit_reservation

import (
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

// Request завершённый черновик заявки на выходные
type Request struct {
	UserID     string
	FullName   string
	EmployeeID string
	Location   domain.Location
	Role       domain.Role
	Dates      []time.Time // 1..2 календарных дат
}

// Response результат успешного оформления заявки
type Response struct {
	OrderID string
	Order   *domain.Order
}
