package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Venue errors
	ErrVenueNotFound    = errors.New("venue not found")
	ErrNoVenuesLoaded   = errors.New("no venue schedule could be loaded")
	ErrDateOutOfWindow  = errors.New("date outside the bookable window")
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidFilterKey = errors.New("invalid filter key")

	// Coordination errors
	ErrCoordinatorStopped = errors.New("session coordinator stopped")

	// Backend errors
	ErrBackendUnavailable = errors.New("booking backend unavailable")
	ErrBookingRejected    = errors.New("booking rejected by backend")
)
