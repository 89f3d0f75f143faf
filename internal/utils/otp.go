package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/markazhub/markaz/internal/pkg/constants"
)

// GenerateOTPCode returns a uniformly random 4-digit code in
// [constants.OTPCodeMin, constants.OTPCodeMax].
func GenerateOTPCode() (string, error) {
	span := int64(constants.OTPCodeMax - constants.OTPCodeMin + 1)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%d", constants.OTPCodeMin+n.Int64()), nil
}

// SecureCompare reports whether two codes are equal without leaking timing
// information about the match position.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
