package domain

import "time"

// TimeRange one contiguous booked interval on a desk
type TimeRange struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Interval returns the range as an Interval
func (r TimeRange) Interval() Interval {
	return Interval{Start: r.Start, End: r.End}
}

// IsValid returns true if the range is non-empty
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Reservation represents a desk booking spanning one or more (possibly non-adjacent) days.
// All TimeRanges belong to DeskID.
type Reservation struct {
	ID             string
	UserID         string
	MembershipID   string
	OrganizationID string
	LocationID     string
	SpaceID        string
	DeskID         string
	TimeRanges     []TimeRange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the reservation belongs to the user
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// FindTimeRange returns the range with the given ID
func (r *Reservation) FindTimeRange(id string) (TimeRange, bool) {
	for _, tr := range r.TimeRanges {
		if tr.ID == id {
			return tr, true
		}
	}
	return TimeRange{}, false
}

// IsLastTimeRange returns true if removing the range would leave the reservation empty
func (r *Reservation) IsLastTimeRange(id string) bool {
	_, ok := r.FindTimeRange(id)
	return ok && len(r.TimeRanges) == 1
}

// ReservationDay is one day-granular occurrence of a Reservation.
// ID is the ID of the parent reservation.
type ReservationDay struct {
	ID             string
	UserID         string
	MembershipID   string
	OrganizationID string
	SpaceID        string
	DeskID         string
	TimeRange      TimeRange
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	UserID          *string    // Только бронирования пользователя (опционально)
	OrganizationIDs []string   // Ограничение по организациям (пусто - без ограничения)
	DeskIDs         []string   // Ограничение по столам (пусто - без ограничения)
	From            *time.Time // Только диапазоны, заканчивающиеся после From (опционально)
}
