package auth

import (
	"context"

	"github.com/markazhub/markaz/internal/pkg/models"
)

// AuthUC defines the authentication use case contract
type AuthUC interface {
	// SendOTP issues a pre-registration challenge for a phone number that
	// is not yet registered.
	SendOTP(ctx context.Context, phone string) error

	// VerifyOTP checks a pre-registration challenge without provisioning
	// an account. The challenge is consumed on success.
	VerifyOTP(ctx context.Context, phone, code string) error

	// Register issues a registration challenge. The response echoes the
	// code only outside production.
	Register(ctx context.Context, phone string) (*models.RegisterResponse, error)

	// CompleteRegistration verifies a registration challenge and
	// provisions the account if it does not exist yet. Reports whether the
	// account was newly created.
	CompleteRegistration(ctx context.Context, phone, code string) (*models.User, bool, error)

	Login(ctx context.Context, phone, password string) (*models.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
