package orientation

import "errors"

var (
	// ErrInvalidInput is returned before any computation when a location
	// is out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrComputation is returned when no candidate orientation produced a
	// finite energy figure.
	ErrComputation = errors.New("computation error")
	// ErrInvalidConfig is returned for unusable model or search parameters.
	ErrInvalidConfig = errors.New("invalid configuration")
)
