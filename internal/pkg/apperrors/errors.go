package apperrors

import "errors"

// Authentication and OTP flow errors
var (
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrAlreadyRegistered    = errors.New("phone number already registered")
	ErrOTPInvalidOrExpired  = errors.New("OTP not found or expired")
	ErrOTPMismatch          = errors.New("OTP code does not match")
	ErrDeliveryFailed       = errors.New("failed to deliver OTP")
	ErrInvalidCredentials   = errors.New("invalid phone number or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrUnsupportedOperation = errors.New("operation not supported for token-derived identities")
)

// Store and resource errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrForbidden        = errors.New("permission denied")
)
