package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no session token is stored.
	// GetToken never returns it; it is used by lower layers and tests.
	ErrTokenNotFound = errors.New("session token not found")

	// ErrEmptyToken indicates an attempt to store an empty token
	ErrEmptyToken = errors.New("session token is empty")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
