package constants

// Redis key formats
const (
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{phone}
)
