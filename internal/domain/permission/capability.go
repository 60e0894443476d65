package permission

// CapabilitySet records which resources a role may access.
type CapabilitySet struct {
	Offices   bool `json:"offices"`
	Blogs     bool `json:"blogs"`
	Approvals bool `json:"approvals"`
	Users     bool `json:"users"`
}

var capabilityTable = map[Role]CapabilitySet{
	RoleSuperAdmin: {Offices: true, Blogs: true, Approvals: true, Users: true},
	RoleManager:    {Offices: true, Blogs: true, Approvals: true},
	RoleEditor:     {Offices: true, Blogs: true},
}

// Resolve maps a role label to its capabilities. Unknown and empty labels get
// the empty set.
func Resolve(role string) CapabilitySet {
	return capabilityTable[NormalizeRole(role)]
}

// HasCapability reports whether role may access resource.
func HasCapability(role string, resource Resource) bool {
	return Resolve(role).Has(resource)
}

func (c CapabilitySet) Has(resource Resource) bool {
	switch resource {
	case ResourceOffices:
		return c.Offices
	case ResourceBlogs:
		return c.Blogs
	case ResourceApprovals:
		return c.Approvals
	case ResourceUsers:
		return c.Users
	}
	return false
}

// Granted lists the resources in the set in navigation order.
func (c CapabilitySet) Granted() []Resource {
	var out []Resource
	for _, r := range Resources() {
		if c.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

func (c CapabilitySet) IsEmpty() bool {
	return c == CapabilitySet{}
}

// Policies flattens the static table into (role, resource) pairs.
func Policies() [][]string {
	var out [][]string
	for _, role := range Roles() {
		for _, r := range capabilityTable[role].Granted() {
			out = append(out, []string{role.String(), r.String()})
		}
	}
	return out
}
