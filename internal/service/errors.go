package service

import "errors"

// Error taxonomy shared by every service. Handlers map these onto HTTP statuses;
// anything not in the taxonomy surfaces as an unhandled failure.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNotFound          = errors.New("record not found")
	ErrAccessDenied      = errors.New("access denied")
)
