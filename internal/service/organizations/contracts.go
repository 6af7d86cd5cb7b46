package organizations

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetOrganization(ctx context.Context, id string) (*domain.Organization, error)
	UpdateCleaning(ctx context.Context, id string, cleaning bool) (*domain.Organization, error)
}

// MembershipServiceClient интерфейс клиента для MembershipService
type MembershipServiceClient interface {
	GetMembershipInOrganization(ctx context.Context, userID, organizationID string) (*membershipservice.Membership, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
