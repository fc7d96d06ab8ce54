package cancel_order

import (
	"github.com/m04kA/SMC-WeekendService/internal/domain"
	cancelReservation "github.com/m04kA/SMC-WeekendService/internal/usecase/cancel_reservation"
)

// CancelOrderResponse HTTP response model
type CancelOrderResponse struct {
	OrderID        string   `json:"orderId"`
	ReleasedDates  []string `json:"releasedDates"`
	FailedReleases []string `json:"failedReleases,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelOrderResponse {
	released := make([]string, len(resp.ReleasedDates))
	for i, d := range resp.ReleasedDates {
		released[i] = d.Format(domain.DateFormat)
	}

	var failed []string
	for _, d := range resp.FailedReleases {
		failed = append(failed, d.Format(domain.DateFormat))
	}

	return &CancelOrderResponse{
		OrderID:        resp.OrderID,
		ReleasedDates:  released,
		FailedReleases: failed,
	}
}
