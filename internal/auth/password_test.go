package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "validpassword123", nil},
		{"password too short", "short", ErrPasswordTooShort},
		{"password at minimum length", "12345678", nil},
		{"password one under minimum", "1234567", ErrPasswordTooShort},
		{"password too long", strings.Repeat("a", 73), ErrPasswordTooLong},
		{"password at maximum length", strings.Repeat("a", 72), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NoError(t, CheckPassword(tt.password, hash))
		})
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("correct horse battery", bcrypt.MinCost)
	require.NoError(t, err)

	assert.ErrorIs(t, CheckPassword("wrong horse battery", hash), ErrInvalidPassword)
	assert.Error(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}

func TestGenerateAPIToken(t *testing.T) {
	plaintext, hash, err := GenerateAPIToken()
	require.NoError(t, err)

	assert.Len(t, plaintext, 64)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, plaintext, hash)
	assert.Equal(t, hash, HashToken(plaintext))

	other, _, err := GenerateAPIToken()
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, other)
}
