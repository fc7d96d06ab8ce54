package get_available_dates

import (
	getAvailableDates "github.com/m04kA/SMC-WeekendService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Location string   `json:"location"`
	Role     string   `json:"role"`
	Dates    []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	return &AvailableDatesResponse{
		Location: resp.Location,
		Role:     resp.Role,
		Dates:    resp.Dates,
	}
}
