package content

import "errors"

var (
	// ErrUnavailable is returned by write paths when the datastore cannot be reached.
	ErrUnavailable = errors.New("datastore unavailable")

	ErrInvalidFolder = errors.New("invalid upload folder")
	ErrNotImage      = errors.New("payload is not a decodable image")
	ErrEmptyPayload  = errors.New("empty payload")
)
