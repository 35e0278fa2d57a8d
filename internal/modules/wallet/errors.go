package wallet

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCurrencyMismatch  = errors.New("wallet currency mismatch")
	ErrValidation        = errors.New("invalid wallet operation")
	ErrDuplicateRequest  = errors.New("duplicate wallet operation")
)
