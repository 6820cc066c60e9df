// Package common contains shared constants and sentinel errors used across
// the tourist guide components. Callers match these values with errors.Is.
package common

import "errors"

var (
	// User input errors. Recovered locally and surfaced as an inline
	// message, never fatal.
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrWeakPassword   = errors.New("password is too short")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrWrongPassword  = errors.New("wrong password")

	// Favorites errors. "Already favorite" is a soft condition shown to
	// the user, not a system fault.
	ErrNoSession       = errors.New("no active session")
	ErrAlreadyFavorite = errors.New("already in favorites")
)
