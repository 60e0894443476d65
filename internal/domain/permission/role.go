package permission

import "strings"

// Role is a staff role label, normalized to upper case.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleManager    Role = "MANAGER"
	RoleEditor     Role = "EDITOR"
)

// NormalizeRole trims and upper-cases a role label. Unknown labels are kept so
// they can be logged; they resolve to no capabilities.
func NormalizeRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsKnown() bool {
	_, ok := capabilityTable[r]
	return ok
}

// Roles lists the known roles from most to least privileged.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleManager, RoleEditor}
}
