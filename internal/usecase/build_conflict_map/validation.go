package build_conflict_map

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие дней или времени не считается ошибкой - в этом случае карта просто пустая.
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if len(req.Days) > domain.MaxReservationDays {
		return fmt.Errorf("%w: at most %d days can be checked", ErrInvalidInput, domain.MaxReservationDays)
	}

	if err := validateTime(req.StartTime); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := validateTime(req.EndTime); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	return nil
}

func validateTime(t *types.TimeString) error {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.Validate()
}

// isComplete проверяет, что бронирование заполнено достаточно для проверки конфликтов
func isComplete(req *Request) bool {
	return len(req.Days) > 0 &&
		req.StartTime != nil && !req.StartTime.IsZero() &&
		req.EndTime != nil && !req.EndTime.IsZero()
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
