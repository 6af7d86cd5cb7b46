package auto_forward

import "github.com/m04kA/SMC-DeskBooking/internal/domain"

// FailedBillingOrganizations возвращает ID организаций с проблемой оплаты подписки
func FailedBillingOrganizations(organizations []*domain.Organization) []string {
	failed := make([]string, 0)
	for _, org := range organizations {
		if org != nil && org.SubscriptionFailed {
			failed = append(failed, org.ID)
		}
	}
	return failed
}

// AutoForward продвигает частичный выбор по иерархии организация -> локация -> пространство,
// если на уровне ровно один непустой вариант (непустой = содержит хотя бы один стол).
//
// Если хотя бы у одной организации проблема с оплатой (failedBilling не пуст),
// выбор возвращается без изменений. Стол никогда не выбирается автоматически.
// Входной partial не изменяется.
func AutoForward(
	partial domain.Selection,
	failedBilling []string,
	organizations []*domain.Organization,
	locations []*domain.Location,
	spaces []*domain.Space,
	desks []*domain.Desk,
) domain.Selection {
	selection := partial.Clone()

	if len(failedBilling) > 0 {
		return selection
	}

	tree := buildCatalogTree(locations, spaces, desks)

	// Организация
	if selection.OrganizationID == nil && len(organizations) == 1 {
		org := organizations[0]
		if org != nil && tree.organizationHasDesks(org.ID) {
			orgID := org.ID
			selection.OrganizationID = &orgID
		}
	}

	// Локация
	if selection.OrganizationID != nil && selection.LocationID == nil {
		candidates := make([]string, 0)
		for _, loc := range locations {
			if loc != nil && loc.OrganizationID == *selection.OrganizationID && tree.locationHasDesks(loc.ID) {
				candidates = append(candidates, loc.ID)
			}
		}
		if len(candidates) == 1 {
			selection.LocationID = &candidates[0]
		}
	}

	// Пространство
	if selection.LocationID != nil && selection.SpaceID == nil {
		candidates := make([]string, 0)
		for _, space := range spaces {
			if space != nil && space.LocationID == *selection.LocationID && tree.spaceHasDesks(space.ID) {
				candidates = append(candidates, space.ID)
			}
		}
		if len(candidates) == 1 {
			selection.SpaceID = &candidates[0]
		}
	}

	return selection
}

// catalogTree количество столов на каждом уровне иерархии
type catalogTree struct {
	desksBySpace        map[string]int
	desksByLocation     map[string]int
	desksByOrganization map[string]int
}

// buildCatalogTree считает столы снизу вверх по связям стол -> пространство -> локация -> организация.
// Сущности с неизвестным родителем пропускаются.
func buildCatalogTree(locations []*domain.Location, spaces []*domain.Space, desks []*domain.Desk) catalogTree {
	tree := catalogTree{
		desksBySpace:        make(map[string]int),
		desksByLocation:     make(map[string]int),
		desksByOrganization: make(map[string]int),
	}

	locationOrg := make(map[string]string, len(locations))
	for _, loc := range locations {
		if loc != nil {
			locationOrg[loc.ID] = loc.OrganizationID
		}
	}

	spaceLocation := make(map[string]string, len(spaces))
	for _, space := range spaces {
		if space != nil {
			spaceLocation[space.ID] = space.LocationID
		}
	}

	for _, desk := range desks {
		if desk == nil {
			continue
		}
		locationID, ok := spaceLocation[desk.SpaceID]
		if !ok {
			continue
		}
		tree.desksBySpace[desk.SpaceID]++

		orgID, ok := locationOrg[locationID]
		if !ok {
			continue
		}
		tree.desksByLocation[locationID]++
		tree.desksByOrganization[orgID]++
	}

	return tree
}

func (t catalogTree) spaceHasDesks(id string) bool {
	return t.desksBySpace[id] > 0
}

func (t catalogTree) locationHasDesks(id string) bool {
	return t.desksByLocation[id] > 0
}

func (t catalogTree) organizationHasDesks(id string) bool {
	return t.desksByOrganization[id] > 0
}
