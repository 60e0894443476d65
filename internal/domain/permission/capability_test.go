package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		role string
		want CapabilitySet
	}{
		{"SUPERADMIN", CapabilitySet{Offices: true, Blogs: true, Approvals: true, Users: true}},
		{"MANAGER", CapabilitySet{Offices: true, Blogs: true, Approvals: true}},
		{"EDITOR", CapabilitySet{Offices: true, Blogs: true}},
		{"ghost", CapabilitySet{}},
		{"", CapabilitySet{}},
		{"ADMIN", CapabilitySet{}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.role))
			assert.Equal(t, Resolve(tt.role), Resolve(tt.role))
		})
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Resolve("EDITOR"), Resolve("editor"))
	assert.Equal(t, Resolve("MANAGER"), Resolve("  Manager "))
	assert.Equal(t, Resolve("SUPERADMIN"), Resolve("superAdmin"))
}

func TestHasCapability(t *testing.T) {
	assert.True(t, HasCapability("editor", ResourceOffices))
	assert.False(t, HasCapability("editor", ResourceApprovals))
	assert.True(t, HasCapability("manager", ResourceApprovals))
	assert.False(t, HasCapability("manager", ResourceUsers))
	assert.True(t, HasCapability("superadmin", ResourceUsers))
	assert.False(t, HasCapability("", ResourceOffices))
	assert.False(t, HasCapability("SUPERADMIN", Resource("billing")))
}

func TestCapabilitySet_Granted(t *testing.T) {
	assert.Equal(t, []Resource{ResourceOffices, ResourceBlogs}, Resolve("EDITOR").Granted())
	assert.Empty(t, Resolve("nobody").Granted())
	assert.True(t, Resolve("nobody").IsEmpty())
}

func TestPolicies(t *testing.T) {
	policies := Policies()
	assert.Len(t, policies, 9)
	assert.Contains(t, policies, []string{"SUPERADMIN", "users"})
	assert.NotContains(t, policies, []string{"MANAGER", "users"})
	assert.NotContains(t, policies, []string{"EDITOR", "approvals"})
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleEditor, NormalizeRole(" editor"))
	assert.True(t, NormalizeRole("manager").IsKnown())
	assert.False(t, NormalizeRole("ghost").IsKnown())
}
