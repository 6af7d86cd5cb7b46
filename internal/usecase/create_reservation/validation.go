package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
	"github.com/m04kA/SMC-DeskBooking/pkg/dateutil"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.DeskID == "" {
		return fmt.Errorf("%w: deskID is required", ErrInvalidInput)
	}

	if len(req.Days) == 0 {
		return fmt.Errorf("%w: at least one day is required", ErrInvalidInput)
	}

	if len(req.Days) > domain.MaxReservationDays {
		return fmt.Errorf("%w: at most %d days can be reserved at once", ErrInvalidInput, domain.MaxReservationDays)
	}

	if hasDuplicateDays(req.Days) {
		return fmt.Errorf("%w: days must be unique", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// buildTimeRanges строит по одному диапазону на каждый день.
// Равное время начала и окончания даёт пустой диапазон; меньшее время окончания - переход через полночь.
func buildTimeRanges(req *Request, newID func() string) ([]domain.TimeRange, error) {
	intervals := build_conflict_map.CandidateIntervals(req.Days, req.StartTime, req.EndTime)
	timeRanges := make([]domain.TimeRange, 0, len(intervals))
	for _, interval := range intervals {
		tr := domain.TimeRange{
			ID:    newID(),
			Start: interval.Start,
			End:   interval.End,
		}
		if !tr.IsValid() {
			return nil, fmt.Errorf("%w: endTime must differ from startTime", ErrInvalidInput)
		}
		timeRanges = append(timeRanges, tr)
	}
	return timeRanges, nil
}

// validateDays проверяет, что ни один день не раньше сегодняшнего
func validateDays(days []time.Time, now time.Time) error {
	for _, day := range days {
		if dateutil.DaysBetween(now, day) < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidDate, day.Format(domain.DateFormat))
		}
	}
	return nil
}

func hasDuplicateDays(days []time.Time) bool {
	for i := range days {
		for j := i + 1; j < len(days); j++ {
			if dateutil.IsSameDay(days[i], days[j]) {
				return true
			}
		}
	}
	return false
}

// earliestDay возвращает самый ранний выбранный день
func earliestDay(days []time.Time) time.Time {
	earliest := days[0]
	for _, day := range days[1:] {
		if day.Before(earliest) {
			earliest = day
		}
	}
	return earliest
}
