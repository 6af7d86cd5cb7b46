package auto_forward

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalogRepo struct {
	catalogFixture
	requestedOrgIDs []string
}

func (f *fakeCatalogRepo) ListOrganizations(_ context.Context, ids []string) ([]*domain.Organization, error) {
	f.requestedOrgIDs = ids
	return f.organizations, nil
}

func (f *fakeCatalogRepo) ListLocations(context.Context, []string) ([]*domain.Location, error) {
	return f.locations, nil
}

func (f *fakeCatalogRepo) ListSpaces(context.Context, []string) ([]*domain.Space, error) {
	return f.spaces, nil
}

func (f *fakeCatalogRepo) ListDesks(context.Context, domain.DeskFilter) ([]*domain.Desk, error) {
	return f.desks, nil
}

type fakeMembershipClient struct {
	memberships []membershipservice.Membership
	err         error
}

func (f *fakeMembershipClient) GetMemberships(context.Context, string) ([]membershipservice.Membership, error) {
	return f.memberships, f.err
}

type fakeMetrics struct {
	halts int
}

func (m *fakeMetrics) IncAutoForwardHalt() {
	m.halts++
}

func TestUseCase_Execute(t *testing.T) {
	catalog := &fakeCatalogRepo{catalogFixture: singlePath()}
	memberships := &fakeMembershipClient{
		memberships: []membershipservice.Membership{{ID: "m1", UserID: "u1", OrganizationID: "org1"}},
	}
	uc := NewUseCase(catalog, memberships, &fakeMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)

	assert.False(t, resp.BillingHalted)
	assert.Equal(t, "org1", ptr.Value(resp.Selection.OrganizationID))
	assert.Equal(t, "loc1", ptr.Value(resp.Selection.LocationID))
	assert.Equal(t, "sp1", ptr.Value(resp.Selection.SpaceID))
	assert.Nil(t, resp.Selection.DeskID)
	assert.Equal(t, []string{"org1"}, catalog.requestedOrgIDs)
}

func TestUseCase_Execute_BillingHalt(t *testing.T) {
	fixture := singlePath()
	fixture.organizations[0].SubscriptionFailed = true
	metrics := &fakeMetrics{}
	uc := NewUseCase(
		&fakeCatalogRepo{catalogFixture: fixture},
		&fakeMembershipClient{memberships: []membershipservice.Membership{{OrganizationID: "org1"}}},
		metrics,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)

	assert.True(t, resp.BillingHalted)
	assert.Equal(t, domain.Selection{}, resp.Selection)
	assert.Equal(t, 1, metrics.halts)
}

func TestUseCase_Execute_NoMemberships(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{catalogFixture: singlePath()}, &fakeMembershipClient{}, &fakeMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{}, resp.Selection)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{}, &fakeMembershipClient{err: errors.New("timeout")}, &fakeMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: "u1"})
	assert.ErrorIs(t, err, ErrInternal)
}
