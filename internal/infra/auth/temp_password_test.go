package auth

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestTempPasswordGenerator_Generate(t *testing.T) {
	generator := NewTempPasswordGenerator()

	for range 50 {
		password, err := generator.Generate()
		assert.NoError(t, err)
		assert.Len(t, password, tempPasswordLength)

		var hasUpper, hasLower, hasDigit, hasSpecial bool
		for _, r := range password {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			case strings.ContainsRune(tempSpecialChars, r):
				hasSpecial = true
			}
		}

		assert.True(t, hasUpper, "password %q missing uppercase", password)
		assert.True(t, hasLower, "password %q missing lowercase", password)
		assert.True(t, hasDigit, "password %q missing digit", password)
		assert.True(t, hasSpecial, "password %q missing special char", password)
	}
}

func TestTempPasswordGenerator_GeneratesDistinctPasswords(t *testing.T) {
	generator := NewTempPasswordGenerator()

	seen := make(map[string]struct{})
	for range 20 {
		password, err := generator.Generate()
		assert.NoError(t, err)
		seen[password] = struct{}{}
	}

	assert.Len(t, seen, 20)
}

func TestTempPasswordGenerator_SatisfiesPasswordPolicy(t *testing.T) {
	generator := NewTempPasswordGenerator()
	hasher := newTestHasher()

	// Every generated password must be accepted by the strength policy,
	// since the reset flow hashes it through the same path as user passwords.
	for range 20 {
		password, err := generator.Generate()
		assert.NoError(t, err)
		assert.NoError(t, hasher.ValidateStrength(password))
	}
}
