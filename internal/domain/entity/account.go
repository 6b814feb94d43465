// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a staff identity in the system. Every person who can
// sign in to the back office (administrators and casting directors) has
// exactly one account, identified by email.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // The display name of the account holder.
	Email        string    // The login identifier. Unique across all accounts.
	PasswordHash string    // The bcrypt hash of the password. Never the plaintext.
	Role         Role      // The authorization role of this account.
	Provider     Provider  // The identity provider the account was created through.
	ProviderID   *string   // The provider-side subject ID. Nil for local accounts.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// IsLocal reports whether the account authenticates with a locally stored
// password rather than an external identity provider.
func (a *Account) IsLocal() bool {
	return a.Provider == ProviderLocal
}
