package auth

import "context"

// SMSGateway is the delivery boundary for OTP codes
type SMSGateway interface {
	SendSMS(ctx context.Context, phone, code string) error
}
