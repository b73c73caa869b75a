package user

import (
	"context"
	"fmt"

	"lenshub/models"
)

// GetUserByID returns the account with the given id.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the account with the given email.
func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return u, nil
}

// ListUsers returns every account. Admin dashboard use only.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateUser applies a partial update. Password and id fields are not
// patchable through this path.
func (s *DefaultUserService) UpdateUser(ctx context.Context, id string, patch map[string]interface{}) error {
	delete(patch, "id")
	delete(patch, "password_hash")
	return s.Repo.Update(ctx, id, patch)
}

// DeleteUser removes the account and clears any live session.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Sessions.Clear(ctx, id)
}
