package organizations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
	"github.com/m04kA/SMC-DeskBooking/internal/service/organizations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	org *domain.Organization
}

func (f *fakeCatalog) GetOrganization(_ context.Context, id string) (*domain.Organization, error) {
	if f.org == nil || f.org.ID != id {
		return nil, catalogRepo.ErrOrganizationNotFound
	}
	return f.org, nil
}

func (f *fakeCatalog) UpdateCleaning(ctx context.Context, id string, cleaning bool) (*domain.Organization, error) {
	org, err := f.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	org.Cleaning = cleaning
	return org, nil
}

type fakeMemberships struct {
	byUser map[string]membershipservice.Membership
}

func (f *fakeMemberships) GetMembershipInOrganization(_ context.Context, userID, organizationID string) (*membershipservice.Membership, error) {
	m, ok := f.byUser[userID]
	if !ok || m.OrganizationID != organizationID {
		return nil, membershipservice.ErrMembershipNotFound
	}
	return &m, nil
}

func newService() (*Service, *fakeCatalog) {
	catalog := &fakeCatalog{org: &domain.Organization{ID: "org1", Name: "Acme"}}
	memberships := &fakeMemberships{byUser: map[string]membershipservice.Membership{
		"admin":  {ID: "m1", UserID: "admin", OrganizationID: "org1", Role: membershipservice.RoleAdmin},
		"member": {ID: "m2", UserID: "member", OrganizationID: "org1", Role: "member"},
	}}
	return NewService(catalog, memberships, nopLogger{}), catalog
}

func TestService_GetSettings(t *testing.T) {
	svc, catalog := newService()
	catalog.org.Cleaning = true

	resp, err := svc.GetSettings(context.Background(), "org1", "member")
	require.NoError(t, err)
	assert.True(t, resp.Cleaning)
	assert.Equal(t, 30, resp.CleaningBufferMinutes)

	_, err = svc.GetSettings(context.Background(), "org1", "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UpdateSettings(t *testing.T) {
	svc, catalog := newService()

	resp, err := svc.UpdateSettings(context.Background(), "org1",
		&models.UpdateSettingsRequest{UserID: "admin", Cleaning: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, resp.Cleaning)
	assert.True(t, catalog.org.Cleaning)

	_, err = svc.UpdateSettings(context.Background(), "org1",
		&models.UpdateSettingsRequest{UserID: "member", Cleaning: ptr.Ptr(false)})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.True(t, catalog.org.Cleaning)

	_, err = svc.UpdateSettings(context.Background(), "org1", &models.UpdateSettingsRequest{UserID: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
