package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFormat      = "некорректный формат: дни ожидаются в формате YYYY-MM-DD, время в формате HH:MM"
	msgInvalidDeskID      = "некорректный ID стола"
	msgDeskConflict       = "стол уже забронирован на выбранное время"
	msgDeskNotFound       = "стол не найден"
	msgNotMember          = "пользователь не состоит в организации стола"
	msgBillingFailed      = "бронирование недоступно: проблема с оплатой подписки организации"
	msgInvalidDate        = "нельзя бронировать прошедшие дни"
	msgInvalidInput       = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !handlers.IsUUID(req.DeskID) {
		h.logger.Warn("POST /reservations - Invalid desk ID: %s", req.DeskID)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дней и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, time.Local)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrDeskConflict):
			h.logger.Warn("POST /reservations - Desk conflict: user_id=%s, desk_id=%s", userID, req.DeskID)
			handlers.RespondConflict(w, msgDeskConflict)

		case errors.Is(err, createReservation.ErrDeskNotFound):
			h.logger.Warn("POST /reservations - Desk not found: desk_id=%s", req.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createReservation.ErrNotMember):
			h.logger.Warn("POST /reservations - Not a member: user_id=%s, desk_id=%s", userID, req.DeskID)
			handlers.RespondForbidden(w, msgNotMember)

		case errors.Is(err, createReservation.ErrBillingFailed):
			h.logger.Warn("POST /reservations - Billing failed: user_id=%s, desk_id=%s", userID, req.DeskID)
			handlers.RespondForbidden(w, msgBillingFailed)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Past day: user_id=%s, desk_id=%s", userID, req.DeskID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, desk_id=%s, error=%v",
				userID, req.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, user_id=%s, desk_id=%s, days=%d",
		result.ID, userID, result.DeskID, len(result.TimeRanges))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
