package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{
			name:  "Valid without plus",
			phone: "998900404001",
			want:  "998900404001",
		},
		{
			name:  "Valid with plus",
			phone: "+998900404001",
			want:  "+998900404001",
		},
		{
			name:  "Separators stripped",
			phone: "+998 90-040-40-01",
			want:  "+998900404001",
		},
		{
			name:  "Minimum length",
			phone: "123456789",
			want:  "123456789",
		},
		{
			name:  "Maximum length",
			phone: "12345678901234",
			want:  "12345678901234",
		},
		{
			name:    "Too short",
			phone:   "12345678",
			wantErr: true,
		},
		{
			name:    "Too long",
			phone:   "123456789012345",
			wantErr: true,
		},
		{
			name:    "Letters rejected",
			phone:   "99890040400a",
			wantErr: true,
		},
		{
			name:    "Empty",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "Plus only",
			phone:   "+",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidatePhone(tc.phone)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
