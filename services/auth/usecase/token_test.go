package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	jwtpkg "github.com/markazhub/markaz/internal/pkg/jwt"
	"github.com/markazhub/markaz/internal/pkg/models"
)

func mustNewUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &models.User{
		ID:       mustNewUUID(t),
		Phone:    testPhone,
		Password: string(hash),
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "secret123")

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(user, nil)

	resp, err := uc.Login(context.Background(), testPhone, "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID.String(), resp.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "secret123")

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(user, nil)

	_, err := uc.Login(context.Background(), testPhone, "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownPhone(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)

	// An unknown phone and a wrong password are indistinguishable to the caller
	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.Login(context.Background(), testPhone, "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "secret123")
	user.IsActive = false

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(user, nil)

	_, err := uc.Login(context.Background(), testPhone, "secret123")
	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

func TestRefreshToken_Success(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "secret123")

	pair, err := jwtpkg.GenerateTokenPair(user, uc.cfg.JWT)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	resp, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID.String(), resp.UserID)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	uc, _, _, _ := setupAuthUC(t)
	user := activeUser(t, "secret123")

	pair, err := jwtpkg.GenerateTokenPair(user, uc.cfg.JWT)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshToken_Malformed(t *testing.T) {
	uc, _, _, _ := setupAuthUC(t)

	_, err := uc.RefreshToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshToken_UserGone(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "secret123")

	pair, err := jwtpkg.GenerateTokenPair(user, uc.cfg.JWT)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), user.ID).
		Return(nil, apperrors.ErrNotFound)

	_, err = uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestChangePassword_Success(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "oldpass")

	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	mockUserRepo.EXPECT().
		UpdatePassword(gomock.Any(), user.ID, gomock.Any(), false).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, hash string, reset bool) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
			return nil
		})

	err := uc.ChangePassword(context.Background(), user.ID.String(), "oldpass", "newpass")
	assert.NoError(t, err)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)
	user := activeUser(t, "oldpass")

	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	err := uc.ChangePassword(context.Background(), user.ID.String(), "wrong", "newpass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword_BadUserID(t *testing.T) {
	uc, _, _, _ := setupAuthUC(t)

	err := uc.ChangePassword(context.Background(), "not-a-uuid", "old", "new")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
