package service

import (
	"time"

	"mdesk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators embedded in the "type" claim. A token of one
// type must never be accepted where the other is expected.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens. The registered
// subject is the account email. AccountID and Role are only present on
// access tokens; refresh tokens carry the subject alone.
type Claims struct {
	AccountID uuid.UUID
	Role      string
	Type      string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given account.
	GenerateTokens(account *entity.Account) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string and that its type
	// claim matches expectedType. Any failure reason is reported uniformly.
	ValidateToken(tokenString, expectedType string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

// TokenRevoker is the hook invoked when a refresh token is redeemed or an
// account signs out. The default implementation is a no-op; a deployment
// backed by a denylist store can replace it.
type TokenRevoker interface {
	// Revoke marks the token identified by the claims as no longer redeemable.
	Revoke(claims *Claims) error

	// IsRevoked reports whether the token identified by the claims was revoked.
	IsRevoked(claims *Claims) bool
}
