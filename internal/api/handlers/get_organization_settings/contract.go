package get_organization_settings

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations/models"
)

type OrganizationService interface {
	GetSettings(ctx context.Context, organizationID, userID string) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
