package build_conflict_map

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// BuildConflictMap вычисляет для каждого стола, пересекается ли предлагаемое бронирование
// (набор дней + время начала/окончания) с уже существующими бронированиями на этом столе.
//
// Результат содержит запись для каждого стола из desks (false, если бронирований нет).
// Если дни не выбраны, время не задано или не в формате HH:MM - возвращается пустая карта.
// Пустое окно (время начала равно времени окончания) ни с чем не конфликтует.
// Буфер уборки берётся по организации стола (cleaningByOrg).
func BuildConflictMap(
	days []time.Time,
	startTime, endTime *types.TimeString,
	cleaningByOrg map[string]bool,
	reservations []*domain.Reservation,
	desks []*domain.Desk,
) map[string]bool {
	conflicts := make(map[string]bool)

	if len(days) == 0 || !isValidTime(startTime) || !isValidTime(endTime) {
		return conflicts
	}

	candidates := CandidateIntervals(days, *startTime, *endTime)
	rangesByDesk := groupTimeRangesByDesk(reservations)

	for _, desk := range desks {
		if desk == nil {
			continue
		}

		existing := rangesByDesk[desk.ID]
		if len(existing) == 0 {
			conflicts[desk.ID] = false
			continue
		}

		var buffer time.Duration
		if cleaningByOrg[desk.OrganizationID] {
			buffer = domain.CleaningBuffer
		}

		conflicts[desk.ID] = anyOverlap(candidates, existing, buffer)
	}

	return conflicts
}

func isValidTime(t *types.TimeString) bool {
	return t != nil && !t.IsZero() && t.Validate() == nil
}

// CandidateIntervals строит по одному интервалу на каждый день.
// Если время окончания раньше времени начала, бронирование переходит через полночь:
// смещение в днях считается один раз и применяется ко всем дням.
func CandidateIntervals(days []time.Time, startTime, endTime types.TimeString) []domain.Interval {
	dayOffset := 0
	if endTime.IsBefore(startTime) {
		dayOffset = 1
	}

	intervals := make([]domain.Interval, 0, len(days))
	for _, day := range days {
		intervals = append(intervals, domain.Interval{
			Start: startTime.On(day),
			End:   endTime.On(day.AddDate(0, 0, dayOffset)),
		})
	}
	return intervals
}

// groupTimeRangesByDesk группирует все существующие интервалы по столу
func groupTimeRangesByDesk(reservations []*domain.Reservation) map[string][]domain.Interval {
	grouped := make(map[string][]domain.Interval)
	for _, reservation := range reservations {
		if reservation == nil {
			continue
		}
		for _, tr := range reservation.TimeRanges {
			grouped[reservation.DeskID] = append(grouped[reservation.DeskID], tr.Interval())
		}
	}
	return grouped
}

// anyOverlap возвращает true на первой конфликтующей паре
func anyOverlap(candidates, existing []domain.Interval, buffer time.Duration) bool {
	for _, candidate := range candidates {
		if candidate.Duration() <= 0 {
			continue
		}
		for _, booked := range existing {
			if domain.Overlaps(candidate, booked, buffer) {
				return true
			}
		}
	}
	return false
}

// ConflictingDeskIDs возвращает ID столов с конфликтом
func ConflictingDeskIDs(conflicts map[string]bool) []string {
	ids := make([]string, 0)
	for deskID, conflict := range conflicts {
		if conflict {
			ids = append(ids, deskID)
		}
	}
	return ids
}
