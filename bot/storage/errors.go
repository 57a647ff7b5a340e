package storage

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist
	// within the caller's visibility scope.
	ErrNotFound = errors.New("storage: not found")

	// ErrForbidden is returned when a word exists but belongs to another user.
	ErrForbidden = errors.New("storage: forbidden")
)
