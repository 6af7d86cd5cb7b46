package get_reservation_days

import "github.com/m04kA/SMC-DeskBooking/internal/domain"

// Request модель запроса на получение дней бронирований
type Request struct {
	UserID   string // ID текущего пользователя
	OnlyMine bool   // Только бронирования текущего пользователя
}

// Response модель ответа с упорядоченным списком дней
type Response struct {
	Days []*domain.ReservationDay
}
