package build_conflict_map

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListOrganizations(ctx context.Context, ids []string) ([]*domain.Organization, error)
	ListDesks(ctx context.Context, filter domain.DeskFilter) ([]*domain.Desk, error)
}

// MembershipServiceClient интерфейс клиента для MembershipService
type MembershipServiceClient interface {
	GetMemberships(ctx context.Context, userID string) ([]membershipservice.Membership, error)
}

// Metrics интерфейс для записи метрик
type Metrics interface {
	ObserveConflictMap(conflicting, total int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
