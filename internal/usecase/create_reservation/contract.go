package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/events"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetDesk(ctx context.Context, id string) (*domain.Desk, error)
	GetOrganization(ctx context.Context, id string) (*domain.Organization, error)
}

// MembershipServiceClient интерфейс клиента для MembershipService
type MembershipServiceClient interface {
	GetMembershipInOrganization(ctx context.Context, userID, organizationID string) (*membershipservice.Membership, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс издателя событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор идентификаторов
type IDGenerator func() string

// Metrics интерфейс для записи метрик
type Metrics interface {
	IncReservationCreated()
	IncReservationConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
