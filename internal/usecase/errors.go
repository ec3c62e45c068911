package usecase

import "errors"

// Service errors the HTTP layer maps to status codes. Everything else is a
// server error.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid")
	ErrValidation   = errors.New("validation failed")
)
