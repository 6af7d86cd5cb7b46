package build_conflict_map

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	buildConflictMap "github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidQuery  = "некорректные параметры: ID в формате UUID, days в формате YYYY-MM-DD через запятую, startTime/endTime в формате HH:MM"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase BuildConflictMapUseCase
	logger  Logger
}

func NewHandler(useCase BuildConflictMapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/desks/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /desks/conflicts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ToUseCaseRequest(userID, r.URL.Query(), time.Local)
	if err != nil {
		h.logger.Warn("GET /desks/conflicts - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, buildConflictMap.ErrInvalidInput):
			h.logger.Warn("GET /desks/conflicts - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /desks/conflicts - Failed to build conflict map: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /desks/conflicts - Conflict map built: user_id=%s, desks=%d", userID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
