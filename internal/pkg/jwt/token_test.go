package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:            "test-secret",
		Expiration:        60,
		RefreshExpiration: 10080,
		Issuer:            "markaz-test",
	}
}

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Phone:    "998900404001",
		FullName: "Test User",
		IsStaff:  true,
		IsActive: true,
	}
}

func TestGenerateTokenPair(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser()

	pair, err := GenerateTokenPair(user, cfg)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.ExpiresAt, time.Now().Unix())

	// Access token carries the identity claims
	claims, err := ValidateToken(pair.AccessToken, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.Phone, claims["phone"])
	assert.Equal(t, user.FullName, claims["full_name"])
	assert.Equal(t, true, claims["is_staff"])
	assert.Equal(t, false, claims["is_superuser"])
	assert.Equal(t, cfg.Issuer, claims["iss"])
	_, hasTyp := claims["typ"]
	assert.False(t, hasTyp)

	// Refresh token carries the subject and the refresh marker only
	refreshClaims, err := ValidateToken(pair.RefreshToken, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), refreshClaims["user_id"])
	assert.Equal(t, TokenTypeRefresh, refreshClaims["typ"])
	_, hasPhone := refreshClaims["phone"]
	assert.False(t, hasPhone)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	pair, err := GenerateTokenPair(testUser(), cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(pair.AccessToken, "other-secret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()

	expired := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"user_id": "42",
		"exp":     time.Now().Add(-1 * time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.Secret)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "secret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_UnexpectedSigningMethod(t *testing.T) {
	// alg=none tokens must be rejected even with a matching payload
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"user_id": "42",
	})
	tokenString, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "secret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}
