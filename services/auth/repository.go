package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
)

// UserRepo is the durable account store boundary
type UserRepo interface {
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetOrCreateUser provisions an active account for the phone number if
	// none exists. Reports whether the account was newly created.
	GetOrCreateUser(ctx context.Context, phone string) (*models.User, bool, error)

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, requireReset bool) error
}

// OTPRepo is the expiring challenge cache boundary. At most one live
// challenge exists per phone; storing again overwrites it.
type OTPRepo interface {
	StoreOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	GetOTP(ctx context.Context, phone string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, phone string) error
}
