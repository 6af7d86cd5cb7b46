package update_organization_settings

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations/models"
)

type OrganizationService interface {
	UpdateSettings(ctx context.Context, organizationID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
