package permission

import "fmt"

// Resource names a dashboard area a role may be granted.
type Resource string

const (
	ResourceOffices   Resource = "offices"
	ResourceBlogs     Resource = "blogs"
	ResourceApprovals Resource = "approvals"
	ResourceUsers     Resource = "users"
)

var validResources = map[Resource]bool{
	ResourceOffices:   true,
	ResourceBlogs:     true,
	ResourceApprovals: true,
	ResourceUsers:     true,
}

func (r Resource) String() string {
	return string(r)
}

func (r Resource) IsValid() bool {
	return validResources[r]
}

// Resources lists every resource in navigation order.
func Resources() []Resource {
	return []Resource{ResourceOffices, ResourceBlogs, ResourceApprovals, ResourceUsers}
}

func NewResource(s string) (Resource, error) {
	r := Resource(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid resource: %s", s)
	}
	return r, nil
}
