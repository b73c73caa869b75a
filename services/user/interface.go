package user

import (
	"context"

	userRepo "lenshub/database/repository/user"
	"lenshub/models"
	"lenshub/services/session"
)

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService manages marketplace accounts and their login sessions.
type UserService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, userID string) error

	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, patch map[string]interface{}) error
	DeleteUser(ctx context.Context, id string) error
}

// DefaultUserService is the production UserService implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions session.Store
}
