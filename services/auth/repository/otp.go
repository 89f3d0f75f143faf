package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/constants"
	"github.com/markazhub/markaz/internal/pkg/models"
)

// StoreOTP caches a challenge under the phone-number key. Any previously
// cached challenge for the same phone is overwritten (last write wins).
func (r *OTPRepo) StoreOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	payload, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Phone)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	return nil
}

// GetOTP returns the live challenge for a phone number. An absent key means
// the challenge was never issued, already consumed, or expired.
func (r *OTPRepo) GetOTP(ctx context.Context, phone string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)

	val, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, apperrors.ErrOTPInvalidOrExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP invalidates the challenge for a phone number (single-use
// enforcement)
func (r *OTPRepo) DeleteOTP(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP: %w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
