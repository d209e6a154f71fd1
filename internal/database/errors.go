package database

import "errors"

var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would break a uniqueness rule,
	// such as two teams with the same name
	ErrConflict = errors.New("already exists")
)
