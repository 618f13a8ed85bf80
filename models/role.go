package models

// Role is the access level of a [User].
type Role string

const (
	// RoleUser is assigned to every newly created identity.
	RoleUser Role = "user"
	// RoleAdmin may additionally delete catalog records.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// In reports whether r is contained in roles.
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}
