package userRepo

import (
	"context"
	"errors"

	"smartmeet/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID or returns ErrUserNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email. A missing user is (nil, nil).
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record. Emails are unique.
	Create(ctx context.Context, user *models.User) error
}
