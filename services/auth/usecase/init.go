package usecase

import (
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/services/auth"
)

// AuthUC implements the authentication use cases
type AuthUC struct {
	userRepo auth.UserRepo
	otpRepo  auth.OTPRepo
	smsGW    auth.SMSGateway
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	otpRepo auth.OTPRepo,
	smsGW auth.SMSGateway,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		smsGW:    smsGW,
		cfg:      cfg,
	}
}
