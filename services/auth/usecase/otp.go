package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/constants"
	"github.com/markazhub/markaz/internal/pkg/logger"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// SendOTP issues a pre-registration challenge. A phone number that already
// has an account is rejected before any code is generated.
func (u *AuthUC) SendOTP(ctx context.Context, phone string) error {
	normalized, err := utils.ValidatePhone(phone)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	_, err = u.userRepo.GetUserByPhone(ctx, normalized)
	if err == nil {
		return apperrors.ErrAlreadyRegistered
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	_, err = u.issueChallenge(ctx, normalized, constants.OTPPreRegisterTTL)
	return err
}

// VerifyOTP checks a pre-registration challenge. The challenge is consumed
// on success and kept on mismatch so the caller may retry until expiry.
func (u *AuthUC) VerifyOTP(ctx context.Context, phone, code string) error {
	normalized, err := utils.ValidatePhone(phone)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	_, err = u.matchChallenge(ctx, normalized, code)
	return err
}

// issueChallenge generates a code, attempts delivery, and caches the
// challenge. The cache write happens only after the delivery attempt so a
// cancelled or failed delivery leaves nothing behind.
func (u *AuthUC) issueChallenge(ctx context.Context, phone string, ttl time.Duration) (string, error) {
	code := u.cfg.Auth.OTPSentinel
	if code == "" {
		var err error
		code, err = utils.GenerateOTPCode()
		if err != nil {
			return "", err
		}
	}

	if err := u.smsGW.SendSMS(ctx, phone, code); err != nil {
		logger.Warn("OTP delivery failed", logger.Fields{"phone": phone, "error": err.Error()})
		return "", err
	}

	otp := &models.OTP{
		Phone:     phone,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if err := u.otpRepo.StoreOTP(ctx, otp, ttl); err != nil {
		return "", err
	}

	logger.Info("OTP issued", logger.Fields{"phone": phone, "ttl_seconds": int(ttl.Seconds())})
	return code, nil
}

// matchChallenge validates a submitted code against the live challenge and
// consumes the challenge on a match.
func (u *AuthUC) matchChallenge(ctx context.Context, phone, code string) (*models.OTP, error) {
	otp, err := u.otpRepo.GetOTP(ctx, phone)
	if err != nil {
		return nil, err
	}

	if !utils.SecureCompare(otp.Code, code) {
		return nil, apperrors.ErrOTPMismatch
	}

	// Single-use: the challenge is gone regardless of what happens next.
	if err := u.otpRepo.DeleteOTP(ctx, phone); err != nil {
		return nil, err
	}

	return otp, nil
}
