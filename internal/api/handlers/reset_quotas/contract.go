package reset_quotas

import "context"

type QuotaService interface {
	ResetQuotas(ctx context.Context, defaults map[string]map[string]int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
