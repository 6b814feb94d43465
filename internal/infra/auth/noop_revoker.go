package auth

import "mdesk/internal/domain/service"

// noopRevoker is the default TokenRevoker. Refresh tokens stay valid until
// expiry; deployments that need immediate revocation plug in a store-backed
// implementation.
type noopRevoker struct{}

// NewNoopTokenRevoker is the constructor for noopRevoker.
func NewNoopTokenRevoker() service.TokenRevoker {
	return &noopRevoker{}
}

// Revoke does nothing.
func (r *noopRevoker) Revoke(_ *service.Claims) error {
	return nil
}

// IsRevoked always reports false.
func (r *noopRevoker) IsRevoked(_ *service.Claims) bool {
	return false
}
