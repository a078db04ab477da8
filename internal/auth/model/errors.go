package model

import "errors"

var (
	// ErrInvalidPassword indicates the submitted password does not match
	// the configured admin secret.
	ErrInvalidPassword = errors.New("invalid admin password")
	// ErrInvalidSession indicates a missing, malformed, or expired
	// session token.
	ErrInvalidSession = errors.New("invalid session")
)
