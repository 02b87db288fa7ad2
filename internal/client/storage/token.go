package storage

import (
	"context"
	"time"
)

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage defines the durable client-side store for the session token.
// It is the only persistent client state. Every method is safe to call
// repeatedly.
type TokenStorage interface {
	// SaveToken persists token, replacing any previous value
	SaveToken(ctx context.Context, token string) error

	// GetToken returns the stored token. ok is false when no token is
	// stored; that is a normal state and err stays nil.
	GetToken(ctx context.Context) (token string, ok bool, err error)

	// DeleteToken removes the stored token. Deleting a missing token is not an error.
	DeleteToken(ctx context.Context) error
}

// TokenRecord is how the token is serialized in storage
type TokenRecord struct {
	SavedAt time.Time `json:"saved_at"`
	Token   string    `json:"token"`
}
