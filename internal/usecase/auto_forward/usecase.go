package auto_forward

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

// UseCase use case автовыбора организации/локации/пространства
type UseCase struct {
	catalogRepo      CatalogRepository
	membershipClient MembershipServiceClient
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	membershipClient MembershipServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:      catalogRepo,
		membershipClient: membershipClient,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case автовыбора.
// Каталог ограничивается организациями, в которых состоит пользователь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AutoForward: user=%s, org=%s, location=%s, space=%s",
		req.UserID, ptr.Value(req.Selection.OrganizationID),
		ptr.Value(req.Selection.LocationID), ptr.Value(req.Selection.SpaceID))

	// 1. Валидация входных данных
	if req.UserID == "" {
		uc.logger.Warn("AutoForward: validation failed: empty userID")
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	// 2. Получаем членства пользователя
	memberships, err := uc.membershipClient.GetMemberships(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("AutoForward: failed to get memberships for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get memberships: %v", ErrInternal, err)
	}

	if len(memberships) == 0 {
		uc.logger.Info("AutoForward: user=%s has no memberships, selection unchanged", req.UserID)
		return &Response{Selection: req.Selection.Clone()}, nil
	}

	orgIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		orgIDs = append(orgIDs, m.OrganizationID)
	}

	// 3. Загружаем доступную пользователю часть каталога
	organizations, err := uc.catalogRepo.ListOrganizations(ctx, orgIDs)
	if err != nil {
		uc.logger.Error("AutoForward: failed to list organizations: %v", err)
		return nil, fmt.Errorf("%w: failed to list organizations: %v", ErrInternal, err)
	}

	// 4. Проблема с оплатой хотя бы в одной организации - ничего не выбираем
	failedBilling := FailedBillingOrganizations(organizations)
	if len(failedBilling) > 0 {
		uc.metrics.IncAutoForwardHalt()
		uc.logger.Warn("AutoForward: subscription failed for organizations %v, selection unchanged", failedBilling)
		return &Response{Selection: req.Selection.Clone(), BillingHalted: true}, nil
	}

	locations, err := uc.catalogRepo.ListLocations(ctx, orgIDs)
	if err != nil {
		uc.logger.Error("AutoForward: failed to list locations: %v", err)
		return nil, fmt.Errorf("%w: failed to list locations: %v", ErrInternal, err)
	}

	spaces, err := uc.catalogRepo.ListSpaces(ctx, orgIDs)
	if err != nil {
		uc.logger.Error("AutoForward: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: failed to list spaces: %v", ErrInternal, err)
	}

	desks, err := uc.catalogRepo.ListDesks(ctx, domain.DeskFilter{OrganizationIDs: orgIDs})
	if err != nil {
		uc.logger.Error("AutoForward: failed to list desks: %v", err)
		return nil, fmt.Errorf("%w: failed to list desks: %v", ErrInternal, err)
	}

	// 5. Продвигаем выбор
	selection := AutoForward(req.Selection, failedBilling, organizations, locations, spaces, desks)

	uc.logger.Info("AutoForward: user=%s resolved to org=%s, location=%s, space=%s",
		req.UserID, ptr.Value(selection.OrganizationID),
		ptr.Value(selection.LocationID), ptr.Value(selection.SpaceID))

	return &Response{Selection: selection}, nil
}
