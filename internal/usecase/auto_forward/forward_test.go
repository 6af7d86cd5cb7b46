package auto_forward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

type catalogFixture struct {
	organizations []*domain.Organization
	locations     []*domain.Location
	spaces        []*domain.Space
	desks         []*domain.Desk
}

// singlePath org1 -> loc1 -> sp1 -> d1
func singlePath() catalogFixture {
	return catalogFixture{
		organizations: []*domain.Organization{{ID: "org1"}},
		locations:     []*domain.Location{{ID: "loc1", OrganizationID: "org1"}},
		spaces:        []*domain.Space{{ID: "sp1", LocationID: "loc1"}},
		desks:         []*domain.Desk{{ID: "d1", SpaceID: "sp1", LocationID: "loc1", OrganizationID: "org1"}},
	}
}

func (f catalogFixture) forward(partial domain.Selection) domain.Selection {
	return AutoForward(partial, FailedBillingOrganizations(f.organizations),
		f.organizations, f.locations, f.spaces, f.desks)
}

func assertSelection(t *testing.T, got domain.Selection, org, loc, space string) {
	t.Helper()
	assert.Equal(t, org, ptr.Value(got.OrganizationID), "organization")
	assert.Equal(t, loc, ptr.Value(got.LocationID), "location")
	assert.Equal(t, space, ptr.Value(got.SpaceID), "space")
	assert.Nil(t, got.DeskID, "desk is never auto-selected")
}

func TestAutoForward_SinglePath(t *testing.T) {
	got := singlePath().forward(domain.Selection{})
	assertSelection(t, got, "org1", "loc1", "sp1")
}

func TestAutoForward_SeveralDesksStillSelectsSpace(t *testing.T) {
	f := singlePath()
	f.desks = append(f.desks, &domain.Desk{ID: "d2", SpaceID: "sp1", LocationID: "loc1", OrganizationID: "org1"})

	got := f.forward(domain.Selection{})
	assertSelection(t, got, "org1", "loc1", "sp1")
}

func TestAutoForward_HaltsOnFailedBilling(t *testing.T) {
	f := singlePath()
	f.organizations[0].SubscriptionFailed = true

	got := f.forward(domain.Selection{})
	assert.Equal(t, domain.Selection{}, got)
}

func TestAutoForward_HaltsOnFailedBillingElsewhere(t *testing.T) {
	f := singlePath()
	partial := domain.Selection{OrganizationID: ptr.Ptr("org1")}

	got := AutoForward(partial, []string{"org-other"}, f.organizations, f.locations, f.spaces, f.desks)
	assertSelection(t, got, "org1", "", "")
}

func TestAutoForward_AmbiguousLocation(t *testing.T) {
	f := singlePath()
	f.locations = append(f.locations, &domain.Location{ID: "loc2", OrganizationID: "org1"})
	f.spaces = append(f.spaces, &domain.Space{ID: "sp2", LocationID: "loc2"})
	f.desks = append(f.desks, &domain.Desk{ID: "d2", SpaceID: "sp2", LocationID: "loc2", OrganizationID: "org1"})

	got := f.forward(domain.Selection{})
	assertSelection(t, got, "org1", "", "")
}

func TestAutoForward_EmptyChoicesIgnored(t *testing.T) {
	f := singlePath()
	// Локация и пространство без столов не мешают автовыбору
	f.locations = append(f.locations, &domain.Location{ID: "loc-empty", OrganizationID: "org1"})
	f.spaces = append(f.spaces,
		&domain.Space{ID: "sp-empty", LocationID: "loc1"},
		&domain.Space{ID: "sp-other", LocationID: "loc-empty"},
	)

	got := f.forward(domain.Selection{})
	assertSelection(t, got, "org1", "loc1", "sp1")
}

func TestAutoForward_OrganizationWithoutDesks(t *testing.T) {
	f := singlePath()
	f.desks = nil

	got := f.forward(domain.Selection{})
	assertSelection(t, got, "", "", "")
}

func TestAutoForward_SeveralOrganizations(t *testing.T) {
	f := singlePath()
	f.organizations = append(f.organizations, &domain.Organization{ID: "org2"})

	got := f.forward(domain.Selection{})
	assertSelection(t, got, "", "", "")

	// Если организация уже выбрана пользователем, дальше продвигаемся
	got = f.forward(domain.Selection{OrganizationID: ptr.Ptr("org1")})
	assertSelection(t, got, "org1", "loc1", "sp1")
}

func TestAutoForward_KeepsExplicitChoices(t *testing.T) {
	f := singlePath()
	partial := domain.Selection{
		OrganizationID: ptr.Ptr("org1"),
		LocationID:     ptr.Ptr("loc1"),
		SpaceID:        ptr.Ptr("sp1"),
		DeskID:         ptr.Ptr("d1"),
	}

	got := f.forward(partial)
	require.NotNil(t, got.DeskID)
	assert.Equal(t, "d1", *got.DeskID)

	// Результат не разделяет указатели с входом
	*got.OrganizationID = "changed"
	assert.Equal(t, "org1", *partial.OrganizationID)
}

func TestFailedBillingOrganizations(t *testing.T) {
	orgs := []*domain.Organization{
		{ID: "org1"},
		{ID: "org2", SubscriptionFailed: true},
		nil,
	}
	assert.Equal(t, []string{"org2"}, FailedBillingOrganizations(orgs))
	assert.Empty(t, FailedBillingOrganizations(nil))
}
