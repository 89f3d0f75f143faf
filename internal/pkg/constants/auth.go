package constants

import "time"

// OTP policy
const (
	// OTPPreRegisterTTL bounds the challenge issued by the pre-registration
	// availability check.
	OTPPreRegisterTTL = 600 * time.Second

	// OTPRegisterTTL bounds the challenge issued by the registration flow.
	OTPRegisterTTL = 1800 * time.Second

	// OTP codes are 4-digit numbers in [OTPCodeMin, OTPCodeMax].
	OTPCodeMin = 1000
	OTPCodeMax = 9999
)

// NSQ topics
const (
	TopicSMSSend = "sms.send"
)

// Enrollment statuses
const (
	EnrollmentRegistered = "registered"
	EnrollmentStudying   = "studying"
	EnrollmentGraduated  = "graduated"
)
