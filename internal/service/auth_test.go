package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/texnomart/backend/internal/repo"
	"github.com/texnomart/backend/internal/transport"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		Repo:          &repo.GormRepo{DB: newTestDB(t)},
		JWTSecret:     []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, transport.RegisterRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "hunter2", user.PasswordHash)

	result, err := svc.Login(ctx, transport.LoginRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)
	require.Equal(t, "aziz", result.User.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, transport.RegisterRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, transport.RegisterRequest{Username: "aziz", Password: "other"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, transport.RegisterRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, transport.LoginRequest{Username: "aziz", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, transport.LoginRequest{Username: "nobody", Password: "hunter2"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesRotation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, transport.RegisterRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)
	result, err := svc.Login(ctx, transport.LoginRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)

	_, _, err = svc.RotateToken(ctx, result.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RefreshToken))

	_, _, err = svc.RotateToken(ctx, result.RefreshToken)
	require.EqualError(t, err, "refresh token revoked")
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, transport.RegisterRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)
	result, err := svc.Login(ctx, transport.LoginRequest{Username: "aziz", Password: "hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RefreshToken))
	require.NoError(t, svc.Logout(ctx, result.RefreshToken))
}

func TestLogoutGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	err := svc.Logout(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrValidation)
}

func TestLogoutRejectsAccessToken(t *testing.T) {
	svc := newAuthService(t)

	access, err := SignAccessToken(1, "user", svc.RefreshSecret)
	require.NoError(t, err)

	err = svc.Logout(context.Background(), access)
	require.ErrorIs(t, err, ErrValidation)
}

func TestLogoutExpiredToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	claims := jwt.MapClaims{
		"sub":  uint(1),
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"typ":  "refresh",
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.RefreshSecret)
	require.NoError(t, err)

	// An expired token must still revoke: the point of logout is killing
	// the row, not proving freshness.
	require.NoError(t, svc.Logout(ctx, expired))
}

func TestRotateTokenUnknown(t *testing.T) {
	svc := newAuthService(t)

	fresh, err := SignRefreshToken(7, "user", svc.RefreshSecret)
	require.NoError(t, err)

	_, _, err = svc.RotateToken(context.Background(), fresh)
	require.EqualError(t, err, "refresh token not found")
}
