// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "ADMIN"
	// RoleDirector indicates a casting director.
	RoleDirector Role = "DIRECTOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDirector:
		return true
	default:
		return false
	}
}
