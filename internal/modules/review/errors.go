package review

import "errors"

var (
	ErrNotEligible   = errors.New("no completed booking for this event")
	ErrAlreadyExists = errors.New("booking already reviewed")
	ErrValidation    = errors.New("invalid review data")
	ErrEventNotFound = errors.New("event not found")
)
