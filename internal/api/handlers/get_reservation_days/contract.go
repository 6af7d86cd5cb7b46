package get_reservation_days

import (
	"context"

	getReservationDays "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_reservation_days"
)

type GetReservationDaysUseCase interface {
	Execute(ctx context.Context, req *getReservationDays.Request) (*getReservationDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
