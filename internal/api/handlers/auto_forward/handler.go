package auto_forward

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	autoForward "github.com/m04kA/SMC-DeskBooking/internal/usecase/auto_forward"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidQuery  = "некорректный ID в параметрах запроса"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase AutoForwardUseCase
	logger  Logger
}

func NewHandler(useCase AutoForwardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /selection - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ToUseCaseRequest(userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /selection - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, autoForward.ErrInvalidInput):
			h.logger.Warn("GET /selection - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /selection - Failed to forward selection: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.BillingHalted {
		h.logger.Warn("GET /selection - Auto-forward halted by billing: user_id=%s", userID)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
