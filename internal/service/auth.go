package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/hash"
	"github.com/texnomart/backend/internal/logging"
	"github.com/texnomart/backend/internal/models"
	"github.com/texnomart/backend/internal/repo"
	"github.com/texnomart/backend/internal/transport"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         models.User
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: pwHash,
		Role:         "user",
		Email:        req.Email,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username %q already exists", ErrValidation, req.Username)
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*LoginResult, error) {
	user, err := s.Repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := SignAccessToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := SignRefreshToken(user.ID, user.Role, s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	stored := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(RefreshTokenTTL).Unix(),
	}
	if err := s.Repo.SaveRefreshToken(ctx, &stored); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

// Logout revokes the refresh token. Any structurally valid token revokes
// cleanly, expired ones included; revoking twice is fine.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := ParseRefreshClaims(refreshToken, s.RefreshSecret); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.Repo.RevokeRefreshToken(ctx, refreshToken)
}

// RotateToken exchanges a live refresh token for a fresh pair. Revoked,
// expired or unknown tokens are refused.
func (s *AuthService) RotateToken(ctx context.Context, rawToken string) (string, string, error) {
	claims, err := ParseRefreshClaims(rawToken, s.RefreshSecret)
	if err != nil {
		return "", "", err
	}

	stored, err := s.Repo.GetRefreshToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", errors.New("refresh token not found")
		}
		return "", "", err
	}
	if stored.Revoked {
		return "", "", errors.New("refresh token revoked")
	}
	if time.Now().Unix() > stored.ExpiresAt {
		return "", "", errors.New("refresh token expired")
	}

	userID := uint(claims["sub"].(float64))
	role, _ := claims["role"].(string)

	newAccess, err := SignAccessToken(userID, role, s.JWTSecret)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := SignRefreshToken(userID, role, s.RefreshSecret)
	if err != nil {
		return "", "", err
	}

	newStored := models.RefreshToken{
		Token:     newRefresh,
		UserID:    userID,
		ExpiresAt: time.Now().Add(RefreshTokenTTL).Unix(),
	}
	if err := s.Repo.SaveRefreshToken(ctx, &newStored); err != nil {
		return "", "", err
	}

	return newAccess, newRefresh, nil
}
