package entity

import "github.com/google/uuid"

// Principal is the authenticated identity extracted from an access token,
// carried through request context to handlers and use cases.
type Principal struct {
	AccountID uuid.UUID
	Email     string
	Role      Role
}

// IsAdmin reports whether the principal holds the administrator role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
