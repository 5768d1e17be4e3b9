package repository

import "errors"

var (
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned by user creation when the username is
	// already registered.
	ErrUsernameTaken = errors.New("username already taken")
)
