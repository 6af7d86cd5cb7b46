package auto_forward

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListOrganizations(ctx context.Context, ids []string) ([]*domain.Organization, error)
	ListLocations(ctx context.Context, organizationIDs []string) ([]*domain.Location, error)
	ListSpaces(ctx context.Context, organizationIDs []string) ([]*domain.Space, error)
	ListDesks(ctx context.Context, filter domain.DeskFilter) ([]*domain.Desk, error)
}

// MembershipServiceClient интерфейс клиента для MembershipService
type MembershipServiceClient interface {
	GetMemberships(ctx context.Context, userID string) ([]membershipservice.Membership, error)
}

// Metrics интерфейс для записи метрик
type Metrics interface {
	IncAutoForwardHalt()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
