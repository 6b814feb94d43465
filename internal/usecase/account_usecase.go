// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mdesk/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new staff account.
// Provider defaults to LOCAL when empty; external providers must supply
// the provider-side subject id.
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Provider   entity.Provider
	ProviderID *string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change an account password
// by email, verifying the current password first.
type ChangePasswordInput struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AccountOutput returns an account's basic information.
type AccountOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// TokenPairOutput returns a freshly rotated token pair. RefreshExpiresIn is
// how long the new refresh token stays redeemable, so clients know when a
// full re-login becomes necessary.
type TokenPairOutput struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresIn time.Duration
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignupAdmin registers a new administrator account.
	SignupAdmin(ctx context.Context, input SignupInput) (*AccountOutput, error)

	// SignupDirector registers a new casting director account.
	SignupDirector(ctx context.Context, input SignupInput) (*AccountOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshToken redeems a refresh token and rotates both tokens.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// ChangePassword changes an account password after verifying the current one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// GetProfile retrieves an account by its email.
	GetProfile(ctx context.Context, email string) (*AccountOutput, error)

	// DeleteAccount removes an account by ID.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// PasswordResetUsecase defines the temp-password reset flow.
type PasswordResetUsecase interface {
	// ResetPassword issues a temporary password for the account and mails it
	// to the account holder. The stored hash changes only if the mail was
	// accepted for delivery.
	ResetPassword(ctx context.Context, email string) error
}
