package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest signals malformed query parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidPeriod signals an unsupported analytics period.
	ErrInvalidPeriod = errors.New("invalid analytics period")
)
