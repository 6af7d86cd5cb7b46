package auto_forward

import "github.com/m04kA/SMC-DeskBooking/internal/domain"

// Request модель запроса на автовыбор по каталогу
type Request struct {
	UserID    string           // ID пользователя
	Selection domain.Selection // Текущий частичный выбор
}

// Response модель ответа с (возможно) продвинутым выбором
type Response struct {
	Selection     domain.Selection
	BillingHalted bool // Автовыбор остановлен из-за проблем с оплатой
}
