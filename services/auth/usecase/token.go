package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	jwtpkg "github.com/markazhub/markaz/internal/pkg/jwt"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// Login authenticates with phone and password and issues a token pair
func (u *AuthUC) Login(ctx context.Context, phone, password string) (*models.AuthResponse, error) {
	normalized, err := utils.ValidatePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	user, err := u.userRepo.GetUserByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return u.issueTokens(user)
}

// RefreshToken validates a refresh token and issues a fresh pair
func (u *AuthUC) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := jwtpkg.ValidateToken(refreshToken, u.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	typ, _ := claims["typ"].(string)
	if typ != jwtpkg.TokenTypeRefresh {
		return nil, apperrors.ErrInvalidToken
	}

	identity := jwtpkg.ResolveIdentity(claims)
	userID, err := uuid.Parse(identity.ID())
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return u.issueTokens(user)
}

// ChangePassword rotates a user's credential after verifying the old one.
// A successful change clears the pending password-reset flag.
func (u *AuthUC) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.userRepo.UpdatePassword(ctx, id, string(hash), false)
}

func (u *AuthUC) issueTokens(user *models.User) (*models.AuthResponse, error) {
	pair, err := jwtpkg.GenerateTokenPair(user, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       user.ID.String(),
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}
