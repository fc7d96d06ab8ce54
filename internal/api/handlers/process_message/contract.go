package process_message

import (
	"context"

	"github.com/m04kA/SMC-WeekendService/internal/service/wizard"
)

type WizardService interface {
	Handle(ctx context.Context, userID, command string, args []string) (*wizard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
