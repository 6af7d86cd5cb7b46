package get_reservation_days

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/dateutil"
)

// ToReservationDays разворачивает бронирования в отдельные дни.
//
// Если userID задан, остаются только бронирования пользователя.
// Дни, начавшиеся раньше полуночи текущего дня (now), отбрасываются.
// Результат отсортирован по началу дня; при равном начале - по ID бронирования, затем по ID диапазона.
func ToReservationDays(reservations []*domain.Reservation, userID *string, now time.Time) []*domain.ReservationDay {
	midnight := dateutil.StartOfDay(now)
	days := make([]*domain.ReservationDay, 0)

	for _, reservation := range reservations {
		if reservation == nil {
			continue
		}
		if userID != nil && reservation.UserID != *userID {
			continue
		}

		for _, tr := range reservation.TimeRanges {
			if tr.Start.Before(midnight) {
				continue
			}
			days = append(days, &domain.ReservationDay{
				ID:             reservation.ID,
				UserID:         reservation.UserID,
				MembershipID:   reservation.MembershipID,
				OrganizationID: reservation.OrganizationID,
				SpaceID:        reservation.SpaceID,
				DeskID:         reservation.DeskID,
				TimeRange:      tr,
			})
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		a, b := days[i], days[j]
		if !a.TimeRange.Start.Equal(b.TimeRange.Start) {
			return a.TimeRange.Start.Before(b.TimeRange.Start)
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.TimeRange.ID < b.TimeRange.ID
	})

	return days
}
