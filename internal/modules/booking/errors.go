package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrForbidden         = errors.New("booking access denied")
	ErrValidation        = errors.New("invalid booking data")
	ErrNotBookable       = errors.New("event is not open for booking")
	ErrSoldOut           = errors.New("not enough seats left")
	ErrOwnEvent          = errors.New("guides cannot book their own event")
	ErrInvalidTransition = errors.New("booking status does not allow this operation")
)
