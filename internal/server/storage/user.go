package storage

import (
	"context"

	"github.com/iudanet/khutwa/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if email is already registered
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by email (case-insensitive)
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateProfile updates name, phone, date of birth and photo
	// Returns ErrUserNotFound if user doesn't exist
	UpdateProfile(ctx context.Context, user *models.User) error

	// SearchUsers finds users whose name or email contains query,
	// excluding excludeID. Returns at most limit users.
	SearchUsers(ctx context.Context, query, excludeID string, limit int) ([]*models.User, error)
}
