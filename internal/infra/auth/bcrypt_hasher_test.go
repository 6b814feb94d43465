package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"mdesk/config"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/errors"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost} // low cost for fast tests
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      20,
		RequireLetters: true,
		RequireNumbers: true,
		RequireSpecial: true,
	}

	hasher, _ := NewBcryptHasher(cfg).(*bcryptHasher)

	return hasher
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashRejectsOverlongPassword(t *testing.T) {
	hasher := newTestHasher()

	// bcrypt silently truncates beyond 72 bytes; the hasher must refuse instead.
	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123!",
		"secure@pass1",
		"Complex#Secret9",
		"short1!a",
	}

	for _, password := range validPasswords {
		err := hasher.ValidateStrength(password)
		assert.NoError(t, err, "expected no error for valid password: %s", password)
	}

	invalidPasswords := []struct {
		password string
		reason   string
	}{
		{"123", "too short"},
		{"ThisPasswordIsFarTooLong1!", "too long"},
		{"12345678!", "no letter"},
		{"Password!", "no digit"},
		{"Password123", "no special character"},
	}

	for _, tc := range invalidPasswords {
		err := hasher.ValidateStrength(tc.password)
		assert.Error(t, err, "expected error for password (%s): %s", tc.reason, tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}

func TestBcryptHasher_ValidateStrengthEdgeCases(t *testing.T) {
	hasher := newTestHasher()

	// Empty password
	assert.Error(t, hasher.ValidateStrength(""))

	// Unicode letters still count as letters
	assert.NoError(t, hasher.ValidateStrength("Pässwort123!"))

	// Only special characters
	assert.Error(t, hasher.ValidateStrength(`!@#$%^&*()`))
}

func TestBcryptHasher_DefaultsWithoutPolicy(t *testing.T) {
	hasher, _ := NewBcryptHasher(nil).(*bcryptHasher)

	// Defaults still enforce the 8-20 length window and character classes.
	assert.Error(t, hasher.ValidateStrength("short1!"))
	assert.NoError(t, hasher.ValidateStrength("GoodPass1!"))
}
