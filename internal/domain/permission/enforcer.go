package permission

// PermissionEnforcer answers access checks against a policy store seeded from
// the static capability table.
type PermissionEnforcer interface {
	Enforce(role string, resource Resource) (bool, error)
	GetPermissionsForRole(role string) ([]Resource, error)
	LoadPolicy() error
}
