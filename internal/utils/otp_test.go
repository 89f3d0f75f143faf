package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/constants"
)

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		assert.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, constants.OTPCodeMin)
		assert.LessOrEqual(t, n, constants.OTPCodeMax)
	}
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("1234", "1234"))
	assert.False(t, SecureCompare("1234", "1235"))
	assert.False(t, SecureCompare("1234", "123"))
	assert.False(t, SecureCompare("", "1234"))
	assert.True(t, SecureCompare("", ""))
}
