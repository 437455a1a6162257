package contact

import "errors"

var (
	// ErrInvalidInput reports malformed constructor, seed or field-set input.
	ErrInvalidInput = errors.New("contact: invalid input")
	// ErrInvalidArgument reports a missing record identifier.
	ErrInvalidArgument = errors.New("contact: invalid argument")
	// ErrNotFound is returned by Update when no record carries the id. Get and
	// Remove report misses through their return values instead.
	ErrNotFound = errors.New("contact: not found")
)
