package events

import "time"

// Типы событий жизненного цикла бронирования
const (
	TypeReservationCreated    = "reservation.created"
	TypeReservationCancelled  = "reservation.cancelled"
	TypeReservationDayRemoved = "reservation.day_removed"
)

// Event событие жизненного цикла бронирования
type Event struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	ReservationID  string    `json:"reservationId"`
	UserID         string    `json:"userId"`
	OrganizationID string    `json:"organizationId"`
	DeskID         string    `json:"deskId"`
	TimeRangeIDs   []string  `json:"timeRangeIds,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
