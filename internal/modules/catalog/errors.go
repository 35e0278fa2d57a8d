package catalog

import "errors"

var (
	ErrNotFound          = errors.New("event not found")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrGuideNotVerified  = errors.New("guide is not verified")
	ErrTerminalStatus    = errors.New("event is in a terminal status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
