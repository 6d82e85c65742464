package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/matter-service/internal/auth"
	"github.com/spec-kit/matter-service/internal/config"
	"github.com/spec-kit/matter-service/internal/domain"
	"github.com/spec-kit/matter-service/internal/repository"
	apperrors "github.com/spec-kit/matter-service/pkg/util"
)

// AuthService implements the mock login flow: demo users authenticate with
// email and the shared demo password, and receive a session JWT.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenManager
	passwords auth.PasswordHasher
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		passwords: auth.NewPasswordHasher(cfg.BcryptCost),
	}
}

// TokenManager exposes the token manager for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Users lists every known user for assignee pickers and team views.
func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UserByID fetches a single user.
func (s *AuthService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}
