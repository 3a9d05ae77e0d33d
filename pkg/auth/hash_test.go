package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{
			name:     "Valid password",
			password: "securepassword",
		},
		{
			name:          "Empty password",
			password:      "",
			expectedError: ErrEmptyPassword,
		},
		{
			name:          "Password over the bcrypt limit",
			password:      strings.Repeat("x", 73),
			expectedError: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, tt.password, hashedPassword)
				assert.True(t, hashService.ComparePassword(hashedPassword, tt.password))
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}
	hashedPassword, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		hashedPassword string
		password       string
		expectMatch    bool
	}{
		{
			name:           "Matching password",
			hashedPassword: hashedPassword,
			password:       "securepassword",
			expectMatch:    true,
		},
		{
			name:           "Wrong password",
			hashedPassword: hashedPassword,
			password:       "wrongpassword",
			expectMatch:    false,
		},
		{
			name:           "Garbage hash",
			hashedPassword: "not-a-bcrypt-hash",
			password:       "securepassword",
			expectMatch:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}
