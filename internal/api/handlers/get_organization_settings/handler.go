package get_organization_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgNotFound              = "организация не найдена"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service OrganizationService
	logger  Logger
}

func NewHandler(service OrganizationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := handlers.PathUUID(r, "organizationId")
	if !ok {
		h.logger.Warn("GET /organizations/{id}/settings - Invalid organization ID: %s", organizationID)
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /organizations/{id}/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	settings, err := h.service.GetSettings(r.Context(), organizationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, organizations.ErrOrganizationNotFound):
			h.logger.Warn("GET /organizations/{id}/settings - Organization not found: organization_id=%s", organizationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, organizations.ErrAccessDenied):
			h.logger.Warn("GET /organizations/{id}/settings - Access denied: organization_id=%s, user_id=%s", organizationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /organizations/{id}/settings - Failed to get settings: organization_id=%s, error=%v", organizationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}
