// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"mdesk/config"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/service"
)

// Special characters accepted by the password policy.
const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// bcrypt truncates inputs beyond 72 bytes, so longer passwords are rejected
// instead of silently weakened.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	var policy *config.PasswordStrengthConfig
	if cfg != nil {
		if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		policy = cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", domainerrors.ErrPasswordStrength.WrapMessage("password exceeds 72 bytes")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength enforces the password policy: length bounds plus at least
// one letter, one digit and one special character when the policy requires them.
func (h *bcryptHasher) ValidateStrength(password string) error {
	minLength, maxLength := 8, 20
	requireLetters, requireNumbers, requireSpecial := true, true, true
	if h.policy != nil {
		if h.policy.MinLength > 0 {
			minLength = h.policy.MinLength
		}
		if h.policy.MaxLength > 0 {
			maxLength = h.policy.MaxLength
		}
		requireLetters = h.policy.RequireLetters
		requireNumbers = h.policy.RequireNumbers
		requireSpecial = h.policy.RequireSpecial
	}

	if len(password) < minLength || len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password length out of range")
	}
	if len(password) > bcryptMaxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WrapMessage("password exceeds 72 bytes")
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	if requireLetters && !hasLetter {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain a letter")
	}
	if requireNumbers && !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain a digit")
	}
	if requireSpecial && !hasSpecial {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain a special character")
	}

	return nil
}
