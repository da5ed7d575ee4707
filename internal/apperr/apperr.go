package apperr

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with
// context via fmt.Errorf("...: %w", ...); handlers map them to HTTP
// statuses in one place.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
)
