package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
)

// TokenTypeRefresh marks refresh tokens via the typ claim
const TokenTypeRefresh = "refresh"

// TokenPair bundles an access token with its refresh token
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}

// GenerateTokenPair generates a signed access/refresh token pair for the
// given user
func GenerateTokenPair(user *models.User, cfg models.JWTConfig) (*TokenPair, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	accessClaims := jwt.MapClaims{
		"user_id":      user.ID.String(),
		"phone":        user.Phone,
		"full_name":    user.FullName,
		"is_staff":     user.IsStaff,
		"is_superuser": user.IsSuperuser,
		"exp":          expiresAt,
		"iss":          cfg.Issuer,
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshClaims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"typ":     TokenTypeRefresh,
		"exp":     now.Add(time.Duration(cfg.RefreshExpiration) * time.Minute).Unix(),
		"iss":     cfg.Issuer,
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateToken verifies a token's signature and expiry and returns its
// claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
