package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountBanned      = errors.New("account is banned")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnknownProvider    = errors.New("unknown login provider")
	ErrUnauthorized       = errors.New("unauthorized")
)
