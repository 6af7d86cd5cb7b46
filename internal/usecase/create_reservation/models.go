package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string           // ID пользователя
	DeskID    string           // ID стола
	Days      []time.Time      // Выбранные дни (без времени)
	StartTime types.TimeString // Время начала, например "09:00"
	EndTime   types.TimeString // Время окончания; раньше начала - переход через полночь
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string
	UserID         string
	MembershipID   string
	OrganizationID string
	LocationID     string
	SpaceID        string
	DeskID         string
	TimeRanges     []domain.TimeRange

	CreatedAt time.Time
	UpdatedAt time.Time
}
