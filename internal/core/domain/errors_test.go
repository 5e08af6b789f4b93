package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidCredentials", ErrInvalidCredentials},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrSchemaViolation", ErrSchemaViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrInvalidCredentials tests the login failure message
func TestErrInvalidCredentials(t *testing.T) {
	assert.Equal(t, "invalid username or password", ErrInvalidCredentials.Error())
	assert.False(t, errors.Is(ErrInvalidCredentials, ErrRateLimited))
}

// TestErrors_Wrapped tests that wrapped errors still match their sentinel
func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("load seed: %w", ErrSchemaViolation)
	assert.True(t, errors.Is(wrapped, ErrSchemaViolation))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
}
