package remove_reservation_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidTimeRangeID   = "некорректный ID дня бронирования"
	msgNotFound             = "бронирование не найдено"
	msgTimeRangeNotFound    = "день бронирования не найден"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}/time-ranges/{timeRangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := handlers.PathUUID(r, "reservationId")
	if !ok {
		h.logger.Warn("DELETE /reservations/{id}/time-ranges/{id} - Invalid reservation ID: %s", reservationID)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	timeRangeID, ok := handlers.PathUUID(r, "timeRangeId")
	if !ok {
		h.logger.Warn("DELETE /reservations/{id}/time-ranges/{id} - Invalid time range ID: %s", timeRangeID)
		handlers.RespondBadRequest(w, msgInvalidTimeRangeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations/{id}/time-ranges/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.RemoveDay(r.Context(), reservationID, timeRangeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id}/time-ranges/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrTimeRangeNotFound):
			h.logger.Warn("DELETE /reservations/{id}/time-ranges/{id} - Time range not found: reservation_id=%s, time_range_id=%s",
				reservationID, timeRangeID)
			handlers.RespondNotFound(w, msgTimeRangeNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id}/time-ranges/{id} - Access denied: reservation_id=%s, user_id=%s", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reservations/{id}/time-ranges/{id} - Failed to remove day: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id}/time-ranges/{id} - Day removed: reservation_id=%s, time_range_id=%s, reservation_deleted=%t",
		reservationID, timeRangeID, result.ReservationDeleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
