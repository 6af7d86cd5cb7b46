package get_reservation_days

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	getReservationDays "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_reservation_days"
)

// ReservationDayResponse один день бронирования
type ReservationDayResponse struct {
	ReservationID  string `json:"reservationId"`
	TimeRangeID    string `json:"timeRangeId"`
	UserID         string `json:"userId"`
	MembershipID   string `json:"membershipId"`
	OrganizationID string `json:"organizationId"`
	SpaceID        string `json:"spaceId"`
	DeskID         string `json:"deskId"`
	Date           string `json:"date"`
	Start          string `json:"start"`
	End            string `json:"end"`
}

// ReservationDaysResponse HTTP response model
type ReservationDaysResponse struct {
	Days []ReservationDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getReservationDays.Response) *ReservationDaysResponse {
	days := make([]ReservationDayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, ReservationDayResponse{
			ReservationID:  d.ID,
			TimeRangeID:    d.TimeRange.ID,
			UserID:         d.UserID,
			MembershipID:   d.MembershipID,
			OrganizationID: d.OrganizationID,
			SpaceID:        d.SpaceID,
			DeskID:         d.DeskID,
			Date:           d.TimeRange.Start.Format(domain.DateFormat),
			Start:          d.TimeRange.Start.Format(time.RFC3339),
			End:            d.TimeRange.End.Format(time.RFC3339),
		})
	}
	return &ReservationDaysResponse{Days: days}
}
