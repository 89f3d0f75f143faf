package models

import "time"

// OTP is the ephemeral challenge cached per phone number. It lives only in
// the expiring cache; there is at most one live challenge per phone.
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// SendOTPRequest is the payload for issuing an OTP
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyOTPRequest is the payload for verifying an OTP
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}
