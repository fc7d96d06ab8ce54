package domain

import "time"

// OrderStatus represents the status of a weekend reservation order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRejected  OrderStatus = "rejected"
)

// ValidStatuses допустимые статусы заказа (порядок как в админке)
var ValidStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRejected,
}

// ParseOrderStatus конвертирует строку в OrderStatus
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// Order represents a confirmed weekend reservation
// Dates содержит от 1 до 2 календарных дат; каждая дата соответствует
// ровно одному инкременту used в счётчике квот (location, date, role)
type Order struct {
	ID         string // глобально уникальный идентификатор (UUID)
	UserID     string
	FullName   string
	EmployeeID string
	Location   Location
	Role       Role
	Dates      []time.Time
	Status     OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the order still holds its quota reservations
func (o *Order) IsActive() bool {
	return o.Status != OrderStatusCancelled && o.Status != OrderStatusRejected
}

// CanBeCancelled returns true if the order can be cancelled by the user
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// HasDate returns true if the order includes the given calendar date
func (o *Order) HasDate(date time.Time) bool {
	for _, d := range o.Dates {
		if SameDate(d, date) {
			return true
		}
	}
	return false
}
