package auto_forward

import (
	"context"

	autoForward "github.com/m04kA/SMC-DeskBooking/internal/usecase/auto_forward"
)

type AutoForwardUseCase interface {
	Execute(ctx context.Context, req *autoForward.Request) (*autoForward.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
