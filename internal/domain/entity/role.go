// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level of a credential.
type Role string

const (
	// RoleUser indicates a regular marketplace user.
	RoleUser Role = "USER"
	// RoleAdmin indicates a moderator with reporting and catalog powers.
	RoleAdmin Role = "ADMIN"
	// RoleGod indicates the superuser role that manages admins.
	RoleGod Role = "GOD"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleGod:
		return true
	default:
		return false
	}
}

// Privileged reports whether registration with this role requires an
// allow-listed email.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleGod
}
