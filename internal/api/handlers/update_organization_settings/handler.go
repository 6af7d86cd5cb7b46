package update_organization_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations"
	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations/models"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidInput          = "не указаны изменяемые настройки"
	msgNotFound              = "организация не найдена"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "изменять настройки может только администратор организации"
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

// Handle PUT /api/v1/organizations/{organizationId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := handlers.PathUUID(r, "organizationId")
	if !ok {
		h.logger.Warn("PUT /organizations/{id}/settings - Invalid organization ID: %s", organizationID)
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /organizations/{id}/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /organizations/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	settings, err := h.service.UpdateSettings(r.Context(), organizationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, organizations.ErrInvalidInput):
			h.logger.Warn("PUT /organizations/{id}/settings - Invalid input: organization_id=%s, error=%v", organizationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, organizations.ErrOrganizationNotFound):
			h.logger.Warn("PUT /organizations/{id}/settings - Organization not found: organization_id=%s", organizationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, organizations.ErrAccessDenied):
			h.logger.Warn("PUT /organizations/{id}/settings - Access denied: organization_id=%s, user_id=%s", organizationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /organizations/{id}/settings - Failed to update settings: organization_id=%s, error=%v", organizationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /organizations/{id}/settings - Settings updated: organization_id=%s, cleaning=%t", organizationID, settings.Cleaning)
	handlers.RespondJSON(w, http.StatusOK, settings)
}
