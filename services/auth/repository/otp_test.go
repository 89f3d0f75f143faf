package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/database"
	"github.com/markazhub/markaz/internal/pkg/models"
)

func setupOTPRepo(t *testing.T) (*OTPRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return NewOTPRepo(client), mr
}

func TestOTPRepo_StoreAndGet(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	otp := &models.OTP{Phone: "998900404001", Code: "4242", CreatedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, otp, 10*time.Minute))

	got, err := repo.GetOTP(ctx, "998900404001")
	require.NoError(t, err)
	assert.Equal(t, "998900404001", got.Phone)
	assert.Equal(t, "4242", got.Code)
}

func TestOTPRepo_GetMissing(t *testing.T) {
	repo, _ := setupOTPRepo(t)

	_, err := repo.GetOTP(context.Background(), "998900404001")
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalidOrExpired)
}

func TestOTPRepo_Expiry(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	otp := &models.OTP{Phone: "998900404001", Code: "4242", CreatedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, otp, 10*time.Minute))

	mr.FastForward(10*time.Minute + time.Second)

	_, err := repo.GetOTP(ctx, "998900404001")
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalidOrExpired)
}

func TestOTPRepo_OverwriteLastWins(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	first := &models.OTP{Phone: "998900404001", Code: "1111", CreatedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, first, 10*time.Minute))

	second := &models.OTP{Phone: "998900404001", Code: "2222", CreatedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, second, 30*time.Minute))

	got, err := repo.GetOTP(ctx, "998900404001")
	require.NoError(t, err)
	assert.Equal(t, "2222", got.Code)
}

func TestOTPRepo_Delete(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	otp := &models.OTP{Phone: "998900404001", Code: "4242", CreatedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, otp, 10*time.Minute))
	require.NoError(t, repo.DeleteOTP(ctx, "998900404001"))

	_, err := repo.GetOTP(ctx, "998900404001")
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalidOrExpired)
}

func TestOTPRepo_StoreUnavailable(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()
	mr.Close()

	otp := &models.OTP{Phone: "998900404001", Code: "4242", CreatedAt: time.Now()}
	err := repo.StoreOTP(ctx, otp, 10*time.Minute)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	_, err = repo.GetOTP(ctx, "998900404001")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
