package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/events"
	membershipClient "github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
	"github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
	"github.com/m04kA/SMC-DeskBooking/pkg/dateutil"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	reservationRepo  ReservationRepository
	catalogRepo      CatalogRepository
	membershipClient MembershipServiceClient
	txManager        TransactionManager
	publisher        EventPublisher
	timeProvider     TimeProvider
	newID            IDGenerator
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	membershipClient MembershipServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		catalogRepo:      catalogRepo,
		membershipClient: membershipClient,
		txManager:        txManager,
		publisher:        publisher,
		timeProvider:     dateutil.RealClock{},
		newID:            uuid.NewString,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов повторяется в сериализуемой транзакции на заблокированных диапазонах стола.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, desk=%s, days=%d, start=%s, end=%s",
		req.UserID, req.DeskID, len(req.Days), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дни в прошлом бронировать нельзя
	now := uc.timeProvider.Now()
	if err := validateDays(req.Days, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. Строим диапазоны: по одному на день
	timeRanges, err := buildTimeRanges(req, uc.newID)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем стол
	desk, err := uc.catalogRepo.GetDesk(ctx, req.DeskID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDeskNotFound) {
			uc.logger.Warn("CreateReservation: desk id=%s not found", req.DeskID)
			return nil, ErrDeskNotFound
		}
		uc.logger.Error("CreateReservation: failed to get desk id=%s: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// 5. Пользователь должен состоять в организации стола
	membership, err := uc.membershipClient.GetMembershipInOrganization(ctx, req.UserID, desk.OrganizationID)
	if err != nil {
		if errors.Is(err, membershipClient.ErrMembershipNotFound) {
			uc.logger.Warn("CreateReservation: user=%s is not a member of organization=%s", req.UserID, desk.OrganizationID)
			return nil, ErrNotMember
		}
		uc.logger.Error("CreateReservation: failed to get membership for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get membership: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Организация стола: флаг уборки и состояние оплаты
		org, err := uc.catalogRepo.GetOrganization(txCtx, desk.OrganizationID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get organization id=%s: %v", desk.OrganizationID, err)
			return fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
		}

		if org.SubscriptionFailed {
			uc.logger.Warn("CreateReservation: organization=%s has failed subscription", org.ID)
			return ErrBillingFailed
		}

		// 6.2. Занятость стола с блокировкой (FOR UPDATE)
		from := dateutil.StartOfDay(earliestDay(req.Days)).Add(-domain.CleaningBuffer)
		reservations, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			DeskIDs: []string{desk.ID},
			From:    &from,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations of desk=%s: %v", desk.ID, err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 6.3. Проверяем конфликты
		conflicts := build_conflict_map.BuildConflictMap(
			req.Days,
			&req.StartTime,
			&req.EndTime,
			domain.CleaningFlags([]*domain.Organization{org}),
			reservations,
			[]*domain.Desk{desk},
		)
		if conflicts[desk.ID] {
			uc.metrics.IncReservationConflict()
			uc.logger.Warn("CreateReservation: desk=%s is already reserved (cleaning=%t)", desk.ID, org.Cleaning)
			return ErrDeskConflict
		}

		// 6.4. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ID:             uc.newID(),
			UserID:         req.UserID,
			MembershipID:   membership.ID,
			OrganizationID: desk.OrganizationID,
			LocationID:     desk.LocationID,
			SpaceID:        desk.SpaceID,
			DeskID:         desk.ID,
			TimeRanges:     timeRanges,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isUseCaseError(err) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%s with %d days", result.ID, len(result.TimeRanges))

	// 7. Событие публикуется после коммита, ошибка публикации не отменяет бронирование
	if err := uc.publisher.Publish(ctx, events.Event{
		Type:           events.TypeReservationCreated,
		ReservationID:  result.ID,
		UserID:         result.UserID,
		OrganizationID: result.OrganizationID,
		DeskID:         result.DeskID,
		TimeRangeIDs:   timeRangeIDs(result.TimeRanges),
		OccurredAt:     now,
	}); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish event for reservation id=%s: %v", result.ID, err)
	}

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		MembershipID:   result.MembershipID,
		OrganizationID: result.OrganizationID,
		LocationID:     result.LocationID,
		SpaceID:        result.SpaceID,
		DeskID:         result.DeskID,
		TimeRanges:     result.TimeRanges,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// isUseCaseError проверяет, что ошибка уже переведена в ошибку usecase
func isUseCaseError(err error) bool {
	return errors.Is(err, ErrBillingFailed) ||
		errors.Is(err, ErrDeskConflict) ||
		errors.Is(err, ErrInternal)
}

func timeRangeIDs(ranges []domain.TimeRange) []string {
	ids := make([]string, 0, len(ranges))
	for _, tr := range ranges {
		ids = append(ids, tr.ID)
	}
	return ids
}
