package domain

import "time"

// Role classifies an account's function within the portal.
type Role string

const (
	RoleStudent    Role = "student"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
	RolePublic     Role = "public"
)

// DefaultRole is applied when an account is created without an explicit role.
var DefaultRole = RolePublic

// Roles lists every valid role, in declaration order.
var Roles = []Role{RoleStudent, RoleSupervisor, RoleAdmin, RolePublic}

// Valid reports whether r is one of the enumerated roles.
// No open-ended string is ever a valid role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleSupervisor, RoleAdmin, RolePublic:
		return true
	}
	return false
}

// Identity is the base set of authentication-related fields every account
// possesses. Account embeds it rather than extending a base type, so the
// account's invariants stay local.
type Identity struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Email        string     `json:"email,omitempty"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	IsActive     bool       `json:"is_active"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Account is a portal user record: a generic identity plus the role tag.
// CreatedAt is stamped once at insert and never mutated afterwards.
type Account struct {
	Identity

	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
