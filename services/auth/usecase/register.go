package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/constants"
	"github.com/markazhub/markaz/internal/pkg/logger"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// Register issues a registration challenge for the phone number. Re-issuing
// replaces any pending challenge for the same phone.
func (u *AuthUC) Register(ctx context.Context, phone string) (*models.RegisterResponse, error) {
	normalized, err := utils.ValidatePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	code, err := u.issueChallenge(ctx, normalized, constants.OTPRegisterTTL)
	if err != nil {
		return nil, err
	}

	resp := &models.RegisterResponse{Phone: normalized}
	if u.cfg.Auth.EchoCode {
		resp.Code = code
	}

	return resp, nil
}

// CompleteRegistration verifies the challenge and provisions the account if
// it does not exist yet. A freshly created account receives the OTP code as
// a hashed temporary credential and, by policy, a pending password reset.
func (u *AuthUC) CompleteRegistration(ctx context.Context, phone, code string) (*models.User, bool, error) {
	normalized, err := utils.ValidatePhone(phone)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	otp, err := u.matchChallenge(ctx, normalized, code)
	if err != nil {
		return nil, false, err
	}

	user, created, err := u.userRepo.GetOrCreateUser(ctx, normalized)
	if err != nil {
		return nil, false, err
	}

	if created {
		hash, err := bcrypt.GenerateFromPassword([]byte(otp.Code), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, fmt.Errorf("failed to hash temporary credential: %w", err)
		}
		if err := u.userRepo.UpdatePassword(ctx, user.ID, string(hash), u.cfg.Auth.ForcePasswordReset); err != nil {
			return nil, false, err
		}
		user.RequirePasswordReset = u.cfg.Auth.ForcePasswordReset

		logger.Info("account provisioned", logger.Fields{
			"user_id": user.ID.String(),
			"phone":   normalized,
		})
	}

	return user, created, nil
}
