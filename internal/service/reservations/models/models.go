package models

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// TimeRangeResponse один день бронирования
type TimeRangeResponse struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	MembershipID   string              `json:"membershipId"`
	OrganizationID string              `json:"organizationId"`
	LocationID     string              `json:"locationId"`
	SpaceID        string              `json:"spaceId"`
	DeskID         string              `json:"deskId"`
	TimeRanges     []TimeRangeResponse `json:"timeRanges"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// RemoveDayResponse результат удаления дня
type RemoveDayResponse struct {
	ReservationID      string `json:"reservationId"`
	TimeRangeID        string `json:"timeRangeId"`
	ReservationDeleted bool   `json:"reservationDeleted"` // Удалён последний день - удалено и бронирование
}

// FromDomainTimeRanges конвертирует диапазоны в response модели
func FromDomainTimeRanges(ranges []domain.TimeRange) []TimeRangeResponse {
	result := make([]TimeRangeResponse, 0, len(ranges))
	for _, tr := range ranges {
		result = append(result, TimeRangeResponse{
			ID:    tr.ID,
			Start: tr.Start,
			End:   tr.End,
		})
	}
	return result
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		MembershipID:   r.MembershipID,
		OrganizationID: r.OrganizationID,
		LocationID:     r.LocationID,
		SpaceID:        r.SpaceID,
		DeskID:         r.DeskID,
		TimeRanges:     FromDomainTimeRanges(r.TimeRanges),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
