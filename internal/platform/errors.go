package platform

import (
	"errors"
)

var (
	// ErrAlreadyRunning is returned when a sync run can't be started because another run is still in flight.
	ErrAlreadyRunning = errors.New("sync run already in progress")
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned when a change status transition is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid change status transition")
	// ErrCatalogUnavailable is returned when the source catalog can't be reached at all.
	ErrCatalogUnavailable = errors.New("source catalog unavailable")
	// ErrUnauthorized is returned when the source catalog rejects the configured credentials.
	ErrUnauthorized = errors.New("source catalog rejected credentials")
)

// Unavailable reports whether err means the source catalog as a whole is
// unreachable, as opposed to a single item failing.
func Unavailable(err error) bool {
	return errors.Is(err, ErrCatalogUnavailable) || errors.Is(err, ErrUnauthorized)
}
