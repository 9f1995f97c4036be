package userRepo

import (
	"context"

	"doctorportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email. It returns nil, nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Upsert inserts the user unless one with the same email exists.
	// It reports whether a new record was created.
	Upsert(ctx context.Context, user *models.User) (bool, error)
	// SetRole sets the role of the user with the given id, creating the record if absent.
	SetRole(ctx context.Context, id, role string) (models.UpdateResult, error)
}
