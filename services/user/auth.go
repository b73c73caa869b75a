package user

import (
	"context"
	"fmt"
	"time"

	"lenshub/models"
	"lenshub/services/session"
	"lenshub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued login token and its session live.
const tokenTTL = 72 * time.Hour

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleCustomer
	}
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	id, err := s.Repo.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// Authenticate verifies credentials, mints a JWT and saves the session.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Warn("Authenticate: failed to fetch user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !u.Active {
		return nil, fmt.Errorf("account is deactivated")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	sess := session.Session{
		SubjectID: u.ID,
		Email:     u.Email,
		Role:      u.Role,
		TokenHash: utils.HashToken(token),
		IssuedAt:  now,
		ExpiresAt: now.Add(tokenTTL),
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &AuthResponse{User: *u, Token: token}, nil
}

// RevokeAuthToken logs the user out by clearing the stored session.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, userID string) error {
	if err := s.Sessions.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
