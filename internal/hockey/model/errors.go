package model

import "errors"

var (
	// ErrGameNotFound indicates that the requested game does not exist.
	ErrGameNotFound = errors.New("hockey game not found")
	// ErrInvalidGame indicates a missing or malformed required field.
	ErrInvalidGame = errors.New("invalid hockey game")
)
