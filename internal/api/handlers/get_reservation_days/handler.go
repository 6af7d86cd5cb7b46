package get_reservation_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	getReservationDays "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_reservation_days"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidMine   = "параметр mine должен быть true или false"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetReservationDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetReservationDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservation-days?mine=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservation-days - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	onlyMine := false
	if raw := r.URL.Query().Get("mine"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /reservation-days - Invalid mine parameter: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidMine)
			return
		}
		onlyMine = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getReservationDays.Request{
		UserID:   userID,
		OnlyMine: onlyMine,
	})
	if err != nil {
		switch {
		case errors.Is(err, getReservationDays.ErrInvalidInput):
			h.logger.Warn("GET /reservation-days - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /reservation-days - Failed to get reservation days: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservation-days - Days fetched: user_id=%s, mine=%t, count=%d", userID, onlyMine, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
