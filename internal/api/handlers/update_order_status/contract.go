package update_order_status

import "context"

type OrdersService interface {
	UpdateStatus(ctx context.Context, id string, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
