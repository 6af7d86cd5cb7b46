package remove_reservation_day

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

type ReservationService interface {
	RemoveDay(ctx context.Context, id, timeRangeID, userID string) (*models.RemoveDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
