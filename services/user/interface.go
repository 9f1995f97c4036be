package user

import (
	"context"

	userRepo "doctorportal/database/repository/user"
	"doctorportal/models"
)

type UserService interface {
	// Save records a user on first sign-in; saving a known email is a no-op.
	Save(ctx context.Context, u models.User) (models.InsertResult, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	// Promote grants the admin role to the user with the given id.
	Promote(ctx context.Context, id string) (models.UpdateResult, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
