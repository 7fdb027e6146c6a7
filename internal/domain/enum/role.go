package enum

// Role names used across the application. Roles are stored as strings in the
// RBAC tables and in JWT claims; the constants exist so description
// resolution and permission seeding stay exhaustive.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleProClient  Role = "pro_client"
	RoleClient     Role = "client"
)

// AllRoles lists every role the system seeds
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleProClient, RoleClient}
}

// ParseRole parses a role name, reporting whether it is known
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleProClient, RoleClient:
		return Role(s), true
	}
	return RoleClient, false
}

func (r Role) String() string {
	return string(r)
}
