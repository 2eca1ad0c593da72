package service

import "errors"

// Domain errors shared across services. Handlers map them to HTTP statuses
// in one place.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("resource owned by another user")
	ErrValidation         = errors.New("invalid input")
	ErrQuoteLookup        = errors.New("quote lookup failed")
)
