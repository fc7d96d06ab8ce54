package get_order

import (
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/service/orders/models"
)

// OrderResponse HTTP response model
type OrderResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	FullName     string   `json:"fullName"`
	EmployeeID   string   `json:"employeeId"`
	Location     string   `json:"location"`
	LocationName string   `json:"locationName"`
	Role         string   `json:"role"`
	RoleName     string   `json:"roleName"`
	Dates        []string `json:"dates"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(o *models.OrderResponse) *OrderResponse {
	return &OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		FullName:     o.FullName,
		EmployeeID:   o.EmployeeID,
		Location:     o.Location,
		LocationName: o.LocationName,
		Role:         o.Role,
		RoleName:     o.RoleName,
		Dates:        o.Dates,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
}
