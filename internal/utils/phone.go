package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// phonePattern accepts an optional leading + followed by 9 to 14 digits,
// e.g. "998900404001".
var phonePattern = regexp.MustCompile(`^\+?\d{9,14}$`)

// ValidatePhone validates a phone number and returns its normalized form
// (separators stripped, leading + preserved).
func ValidatePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format: up to 14 digits allowed, e.g. 998900404001")
	}

	return stripped, nil
}
