package model

import "errors"

var (
	// ErrResultNotFound indicates that the requested tournament result
	// does not exist.
	ErrResultNotFound = errors.New("tournament result not found")
	// ErrInvalidResult indicates a missing or malformed required field.
	ErrInvalidResult = errors.New("invalid tournament result")
)
