// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege level of a user. Roles are totally ordered:
// regular < cashier < manager < superuser.
type Role string

const (
	// RoleRegular is the default role of every registered user.
	RoleRegular Role = "regular"
	// RoleCashier may register users and record purchases.
	RoleCashier Role = "cashier"
	// RoleManager administers users, transactions, events and promotions.
	RoleManager Role = "manager"
	// RoleSuperuser may do everything a manager does and assign any role.
	RoleSuperuser Role = "superuser"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r.Rank() > 0
}

// Rank returns the position of the role in the privilege order, 0 for unknown roles.
func (r Role) Rank() int {
	switch r {
	case RoleRegular:
		return 1
	case RoleCashier:
		return 2
	case RoleManager:
		return 3
	case RoleSuperuser:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether r is the same as or more privileged than minimum.
func (r Role) AtLeast(minimum Role) bool {
	return r.IsValid() && r.Rank() >= minimum.Rank()
}

// ParseRole converts a string into a Role, reporting whether it is known.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
