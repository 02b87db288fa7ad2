package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrShareNotFound indicates that there is no share edge between the users
	ErrShareNotFound = errors.New("share not found")

	// ErrContentNotFound indicates that educational content was not found
	ErrContentNotFound = errors.New("content not found")
)
