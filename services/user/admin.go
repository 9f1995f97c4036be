package user

import (
	"context"
	"fmt"

	"doctorportal/models"
)

// Promote sets role=admin on the user with id. Promoting an admin again
// matches without modifying.
func (s *DefaultUserService) Promote(ctx context.Context, id string) (models.UpdateResult, error) {
	res, err := s.Repo.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to promote user %s: %w", id, err)
	}
	return res, nil
}
