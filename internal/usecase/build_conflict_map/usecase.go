package build_conflict_map

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/dateutil"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

// UseCase use case для построения карты конфликтов по столам
type UseCase struct {
	reservationRepo  ReservationRepository
	catalogRepo      CatalogRepository
	membershipClient MembershipServiceClient
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	membershipClient MembershipServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		catalogRepo:      catalogRepo,
		membershipClient: membershipClient,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case построения карты конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildConflictMap: user=%s, days=%d, start=%s, end=%s, org=%s, location=%s, space=%s",
		req.UserID, len(req.Days), ptr.Value(req.StartTime), ptr.Value(req.EndTime),
		ptr.Value(req.OrganizationID), ptr.Value(req.LocationID), ptr.Value(req.SpaceID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildConflictMap: validation failed: %v", err)
		return nil, err
	}

	// 2. Неполное бронирование - конфликтов вычислить нельзя
	if !isComplete(req) {
		uc.logger.Info("BuildConflictMap: booking window is incomplete, returning empty map")
		return &Response{Conflicts: map[string]bool{}}, nil
	}

	// 3. Видны только столы организаций, в которых состоит пользователь
	memberships, err := uc.membershipClient.GetMemberships(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("BuildConflictMap: failed to get memberships for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get memberships: %v", ErrInternal, err)
	}

	if len(memberships) == 0 {
		uc.logger.Info("BuildConflictMap: user=%s has no memberships, returning empty map", req.UserID)
		return &Response{Conflicts: map[string]bool{}}, nil
	}

	orgIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		orgIDs = append(orgIDs, m.OrganizationID)
	}

	// 4. Получаем столы
	desks, err := uc.catalogRepo.ListDesks(ctx, domain.DeskFilter{
		OrganizationIDs: orgIDs,
		OrganizationID:  req.OrganizationID,
		LocationID:      req.LocationID,
		SpaceID:         req.SpaceID,
	})
	if err != nil {
		uc.logger.Error("BuildConflictMap: failed to list desks: %v", err)
		return nil, fmt.Errorf("%w: failed to list desks: %v", ErrInternal, err)
	}

	if len(desks) == 0 {
		uc.logger.Info("BuildConflictMap: no desks match the selection")
		return &Response{Conflicts: map[string]bool{}}, nil
	}

	// 5. Получаем организации столов для флага уборки
	organizations, err := uc.catalogRepo.ListOrganizations(ctx, organizationIDs(desks))
	if err != nil {
		uc.logger.Error("BuildConflictMap: failed to list organizations: %v", err)
		return nil, fmt.Errorf("%w: failed to list organizations: %v", ErrInternal, err)
	}

	// 6. Получаем бронирования этих столов, которые могут пересечься с выбранными днями
	from := dateutil.StartOfDay(earliestDay(req.Days)).Add(-domain.CleaningBuffer)
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		DeskIDs: deskIDs(desks),
		From:    &from,
	})
	if err != nil {
		uc.logger.Error("BuildConflictMap: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 7. Строим карту конфликтов
	conflicts := BuildConflictMap(
		req.Days,
		req.StartTime,
		req.EndTime,
		domain.CleaningFlags(organizations),
		reservations,
		desks,
	)

	conflicting := len(ConflictingDeskIDs(conflicts))
	uc.metrics.ObserveConflictMap(conflicting, len(conflicts))

	uc.logger.Info("BuildConflictMap: %d of %d desks conflict for user=%s", conflicting, len(conflicts), req.UserID)

	return &Response{Conflicts: conflicts}, nil
}

func deskIDs(desks []*domain.Desk) []string {
	ids := make([]string, 0, len(desks))
	for _, desk := range desks {
		ids = append(ids, desk.ID)
	}
	return ids
}

func organizationIDs(desks []*domain.Desk) []string {
	seen := make(map[string]struct{}, len(desks))
	ids := make([]string, 0)
	for _, desk := range desks {
		if _, ok := seen[desk.OrganizationID]; ok {
			continue
		}
		seen[desk.OrganizationID] = struct{}{}
		ids = append(ids, desk.OrganizationID)
	}
	return ids
}
