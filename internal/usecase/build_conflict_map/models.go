package build_conflict_map

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модель запроса на построение карты конфликтов
type Request struct {
	UserID         string            // ID пользователя (для логирования)
	Days           []time.Time       // Выбранные дни (время суток игнорируется)
	StartTime      *types.TimeString // Время начала (например, "09:00")
	EndTime        *types.TimeString // Время окончания (например, "17:00")
	OrganizationID *string           // Ограничение выборки столов (опционально)
	LocationID     *string           // Ограничение выборки столов (опционально)
	SpaceID        *string           // Ограничение выборки столов (опционально)
}

// Response модель ответа с картой конфликтов
type Response struct {
	Conflicts map[string]bool // deskID -> есть ли конфликт
}
