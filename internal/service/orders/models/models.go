// Package models DTO сервиса заказов
package models

import (
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

// OrderResponse заказ в ответе сервиса
type OrderResponse struct {
	ID           string
	UserID       string
	FullName     string
	EmployeeID   string
	Location     string
	LocationName string
	Role         string
	RoleName     string
	Dates        []string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderListResponse список заказов
type OrderListResponse struct {
	Orders []*OrderResponse
	Total  int
}

// FromDomainOrder конвертирует domain.Order в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	dates := make([]string, len(o.Dates))
	for i, d := range o.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	return &OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		FullName:     o.FullName,
		EmployeeID:   o.EmployeeID,
		Location:     string(o.Location),
		LocationName: o.Location.Name(),
		Role:         string(o.Role),
		RoleName:     o.Role.Name(),
		Dates:        dates,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список заказов в DTO
func FromDomainOrderList(list []*domain.Order) *OrderListResponse {
	orders := make([]*OrderResponse, len(list))
	for i, o := range list {
		orders[i] = FromDomainOrder(o)
	}
	return &OrderListResponse{Orders: orders, Total: len(orders)}
}
