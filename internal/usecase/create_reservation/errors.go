package create_reservation

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("create_reservation: desk not found")

	// ErrNotMember возвращается, когда пользователь не состоит в организации стола
	ErrNotMember = errors.New("create_reservation: user is not a member of the desk organization")

	// ErrBillingFailed возвращается, когда у организации проблема с оплатой подписки
	ErrBillingFailed = errors.New("create_reservation: organization subscription failed")

	// ErrDeskConflict возвращается, когда стол уже занят в выбранное время (с учётом уборки)
	ErrDeskConflict = errors.New("create_reservation: desk is already reserved for the selected time")

	// ErrInvalidDate возвращается, когда выбран день в прошлом
	ErrInvalidDate = errors.New("create_reservation: reservation day is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
