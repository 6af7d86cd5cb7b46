package organizations

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/catalog"
	membershipClient "github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations/models"
)

// Service сервис настроек организаций
type Service struct {
	catalogRepo      CatalogRepository
	membershipClient MembershipServiceClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса организаций
func NewService(
	catalogRepo CatalogRepository,
	membershipClient MembershipServiceClient,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:      catalogRepo,
		membershipClient: membershipClient,
		logger:           logger,
	}
}

// GetSettings получает настройки организации. Доступно любому участнику организации.
func (s *Service) GetSettings(ctx context.Context, organizationID, userID string) (*models.SettingsResponse, error) {
	s.logger.Info("GetSettings: fetching organization id=%s for user=%s", organizationID, userID)

	if _, err := s.membership(ctx, "GetSettings", organizationID, userID); err != nil {
		return nil, err
	}

	org, err := s.catalogRepo.GetOrganization(ctx, organizationID)
	if err != nil {
		return nil, s.translateRepoError("GetSettings", organizationID, err)
	}

	s.logger.Info("GetSettings: successfully fetched organization id=%s", organizationID)
	return models.FromDomainOrganization(org), nil
}

// UpdateSettings включает или выключает уборку между бронированиями.
// Доступно только администратору организации.
func (s *Service) UpdateSettings(ctx context.Context, organizationID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating organization id=%s by user=%s", organizationID, req.UserID)

	if req.Cleaning == nil {
		s.logger.Warn("UpdateSettings: nothing to update for organization id=%s", organizationID)
		return nil, fmt.Errorf("%w: cleaning is required", ErrInvalidInput)
	}

	membership, err := s.membership(ctx, "UpdateSettings", organizationID, req.UserID)
	if err != nil {
		return nil, err
	}

	if !membership.IsAdmin() {
		s.logger.Warn("UpdateSettings: user=%s is not an admin of organization=%s", req.UserID, organizationID)
		return nil, ErrAccessDenied
	}

	org, err := s.catalogRepo.UpdateCleaning(ctx, organizationID, *req.Cleaning)
	if err != nil {
		return nil, s.translateRepoError("UpdateSettings", organizationID, err)
	}

	s.logger.Info("UpdateSettings: organization id=%s cleaning=%t", organizationID, org.Cleaning)
	return models.FromDomainOrganization(org), nil
}

func (s *Service) membership(ctx context.Context, op, organizationID, userID string) (*membershipClient.Membership, error) {
	membership, err := s.membershipClient.GetMembershipInOrganization(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, membershipClient.ErrMembershipNotFound) {
			s.logger.Warn("%s: user=%s is not a member of organization=%s", op, userID, organizationID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("%s: failed to get membership for user=%s: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - membership service error: %v", ErrInternal, op, err)
	}
	return membership, nil
}

func (s *Service) translateRepoError(op, organizationID string, err error) error {
	if errors.Is(err, catalogRepo.ErrOrganizationNotFound) {
		s.logger.Warn("%s: organization id=%s not found", op, organizationID)
		return ErrOrganizationNotFound
	}
	s.logger.Error("%s: repository error for organization id=%s: %v", op, organizationID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
