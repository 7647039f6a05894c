package lookup

import (
	"errors"

	"skycast/internal/types"
)

const (
	// MessageNotFound is shown when the API rejects a lookup without saying why
	MessageNotFound = "City not found"
	// MessageFetchFailed is shown when the API could not be reached or understood
	MessageFetchFailed = "Failed to fetch weather data"
)

var (
	ErrEmptyPlace       = errors.New("place name must not be empty")
	ErrUnknownQuery     = errors.New("query has no location")
	ErrInvalidLatitude  = types.ErrInvalidLatitude
	ErrInvalidLongitude = types.ErrInvalidLongitude
)

// LookupError means the API was reached and rejected the request.
// Message is safe to show to the user as-is.
type LookupError struct {
	Status  int
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}

// TransportError means the API could not be reached or its answer could not be read
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return MessageFetchFailed
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err comes from a query that never left the process
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyPlace) ||
		errors.Is(err, ErrUnknownQuery) ||
		errors.Is(err, ErrInvalidLatitude) ||
		errors.Is(err, ErrInvalidLongitude)
}
