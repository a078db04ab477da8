package model

import "errors"

var (
	// ErrRaceNotFound indicates that the requested race does not exist.
	ErrRaceNotFound = errors.New("race not found")
	// ErrInvalidRace indicates a missing or malformed required field.
	ErrInvalidRace = errors.New("invalid race")
)
