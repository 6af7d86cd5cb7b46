package get_reservation_days

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/dateutil"
)

// UseCase use case для получения упорядоченного списка дней бронирований
type UseCase struct {
	reservationRepo  ReservationRepository
	membershipClient MembershipServiceClient
	timeProvider     TimeProvider
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	membershipClient MembershipServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		membershipClient: membershipClient,
		timeProvider:     dateutil.RealClock{},
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case.
// Видимые бронирования - все бронирования организаций, в которых состоит пользователь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetReservationDays: user=%s, onlyMine=%t", req.UserID, req.OnlyMine)

	// 1. Валидация входных данных
	if req.UserID == "" {
		uc.logger.Warn("GetReservationDays: validation failed: empty userID")
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	// 2. Фиксируем текущее время один раз на всё вычисление
	now := uc.timeProvider.Now()

	// 3. Определяем организации пользователя
	memberships, err := uc.membershipClient.GetMemberships(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("GetReservationDays: failed to get memberships for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get memberships: %v", ErrInternal, err)
	}

	if len(memberships) == 0 {
		uc.logger.Info("GetReservationDays: user=%s has no memberships", req.UserID)
		return &Response{Days: []*domain.ReservationDay{}}, nil
	}

	orgIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		orgIDs = append(orgIDs, m.OrganizationID)
	}

	// 4. Получаем бронирования, у которых есть сегодняшние или будущие дни
	from := dateutil.StartOfDay(now)
	filter := domain.ReservationFilter{
		OrganizationIDs: orgIDs,
		From:            &from,
	}
	if req.OnlyMine {
		filter.UserID = &req.UserID
	}

	reservations, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetReservationDays: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 5. Разворачиваем в дни
	var userID *string
	if req.OnlyMine {
		userID = &req.UserID
	}
	days := ToReservationDays(reservations, userID, now)

	uc.metrics.ObserveReservationDays(len(days))
	uc.logger.Info("GetReservationDays: projected %d days from %d reservations for user=%s",
		len(days), len(reservations), req.UserID)

	return &Response{Days: days}, nil
}
