package membershipservice

import "errors"

var (
	// ErrMembershipNotFound возвращается, когда пользователь не состоит в организации
	ErrMembershipNotFound = errors.New("membershipservice client: membership not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("membershipservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("membershipservice client: invalid response")
)
