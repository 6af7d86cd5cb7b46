package domain

import "time"

// Organization is the top level of the catalog
type Organization struct {
	ID                 string
	Name               string
	Cleaning           bool // Требуется уборка между бронированиями
	SubscriptionFailed bool // Проблема с оплатой подписки
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CleaningBuffer returns the turnaround required between bookings of the organization's desks
func (o *Organization) CleaningBuffer() time.Duration {
	if o.Cleaning {
		return CleaningBuffer
	}
	return 0
}

// Location belongs to an Organization
type Location struct {
	ID             string
	OrganizationID string
	Name           string
}

// Space belongs to a Location
type Space struct {
	ID         string
	LocationID string
	Name       string
}

// Desk belongs to a Space. Ancestor IDs are denormalized for direct filtering.
type Desk struct {
	ID             string
	SpaceID        string
	LocationID     string
	OrganizationID string
	Name           string
}

// Selection is a partial choice along Organization -> Location -> Space -> Desk.
// nil means "not chosen yet".
type Selection struct {
	OrganizationID *string
	LocationID     *string
	SpaceID        *string
	DeskID         *string
}

// Clone returns a copy that shares no pointers with s
func (s Selection) Clone() Selection {
	return Selection{
		OrganizationID: cloneString(s.OrganizationID),
		LocationID:     cloneString(s.LocationID),
		SpaceID:        cloneString(s.SpaceID),
		DeskID:         cloneString(s.DeskID),
	}
}

// CleaningFlags builds organizationID -> cleaning lookup
func CleaningFlags(organizations []*Organization) map[string]bool {
	flags := make(map[string]bool, len(organizations))
	for _, org := range organizations {
		flags[org.ID] = org.Cleaning
	}
	return flags
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// DeskFilter фильтр для выборки столов
type DeskFilter struct {
	OrganizationIDs []string // Ограничение по организациям (пусто - без ограничения)
	OrganizationID  *string
	LocationID      *string
	SpaceID         *string
	DeskIDs         []string
}
