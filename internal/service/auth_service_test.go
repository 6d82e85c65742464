package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/matter-service/internal/auth"
	"github.com/spec-kit/matter-service/internal/config"
	"github.com/spec-kit/matter-service/internal/repository"
	apperrors "github.com/spec-kit/matter-service/pkg/util"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	users := repository.NewMemoryUserRepository()
	hash, err := auth.NewPasswordHasher(4).Hash("demo1234")
	require.NoError(t, err)
	require.NoError(t, repository.SeedDemoUsers(context.Background(), users, hash, time.Now()))

	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 30}
	return NewAuthService(cfg, users)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	user, token, expiresAt, err := svc.Login(context.Background(), "avery.stone@example.com", "demo1234")
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), "avery.stone@example.com", "wrong")
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "demo1234")
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestUserByID(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.UserByID(context.Background(), "user-3")
	require.NoError(t, err)
	assert.Equal(t, "Priya Raman", user.FullName())

	_, err = svc.UserByID(context.Background(), "ghost")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}
