package model

import "errors"

var (
	// ErrGameNotFound indicates that the requested game does not exist.
	ErrGameNotFound = errors.New("football game not found")
	// ErrInvalidGame indicates a missing or malformed required field.
	ErrInvalidGame = errors.New("invalid football game")
)
