package models

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	ExpiresAt    int64  `json:"expires_at"`
}

// LoginRequest is the payload for phone+password login
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterResponse is returned after an OTP has been issued for
// registration. Code is populated only outside production.
type RegisterResponse struct {
	Phone string `json:"phone"`
	Code  string `json:"code,omitempty"`
}
