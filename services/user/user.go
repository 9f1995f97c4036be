package user

import (
	"context"
	"fmt"
	"strings"

	"doctorportal/models"

	"github.com/google/uuid"
)

// Save upserts u by email. Clients cannot assign themselves a role.
func (s *DefaultUserService) Save(ctx context.Context, u models.User) (models.InsertResult, error) {
	u.Email = strings.TrimSpace(u.Email)
	u.Role = ""
	u.ID = uuid.New().String()

	created, err := s.Repo.Upsert(ctx, &u)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to save user: %w", err)
	}
	if !created {
		return models.InsertResult{Acknowledged: true, Message: "user already exists"}, nil
	}
	return models.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// GetByEmail returns nil, nil for unknown emails.
func (s *DefaultUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}
