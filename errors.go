package delaycache

import "errors"

var (
	// ErrInvalidPolicy is returned when an unknown eviction policy is
	// requested.
	ErrInvalidPolicy = errors.New("invalid eviction policy")
)
