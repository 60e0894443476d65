// Package permission gates dashboard areas and staff operations by role.
package permission

import (
	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// DenialRecorder counts refused capability checks.
type DenialRecorder interface {
	PermissionDenied(resource string)
}

// Section is one dashboard navigation entry.
type Section struct {
	Resource string `json:"resource"`
	Title    string `json:"title"`
	Path     string `json:"path"`
}

// RoleCapabilities is one row of the role matrix.
type RoleCapabilities struct {
	Role         string                   `json:"role"`
	Capabilities permission.CapabilitySet `json:"capabilities"`
}

var sections = map[permission.Resource]Section{
	permission.ResourceOffices:   {Resource: "offices", Title: "Airlines & Offices", Path: "/admin/offices"},
	permission.ResourceBlogs:     {Resource: "blogs", Title: "Blog", Path: "/admin/blogs"},
	permission.ResourceApprovals: {Resource: "approvals", Title: "Inquiries", Path: "/admin/approvals"},
	permission.ResourceUsers:     {Resource: "users", Title: "Users & Roles", Path: "/admin/users"},
}

type Service struct {
	enforcer permission.PermissionEnforcer
	denials  DenialRecorder
	logger   logger.Interface
}

// NewService answers from enforcer when given and from the static table
// otherwise. denials may be nil.
func NewService(enforcer permission.PermissionEnforcer, denials DenialRecorder, logger logger.Interface) *Service {
	return &Service{
		enforcer: enforcer,
		denials:  denials,
		logger:   logger,
	}
}

func (s *Service) Resolve(role string) permission.CapabilitySet {
	return permission.Resolve(role)
}

func (s *Service) HasCapability(role string, resource permission.Resource) bool {
	if s.enforcer == nil {
		return permission.HasCapability(role, resource)
	}
	allowed, err := s.enforcer.Enforce(role, resource)
	if err != nil {
		s.logger.Warnw("enforcer failed, using static capability table", "role", role, "resource", resource, "error", err)
		return permission.HasCapability(role, resource)
	}
	return allowed
}

// Require returns a permission denied error unless role holds resource.
func (s *Service) Require(role string, resource permission.Resource) error {
	if s.HasCapability(role, resource) {
		return nil
	}
	if s.denials != nil {
		s.denials.PermissionDenied(resource.String())
	}
	s.logger.Infow("permission denied", "role", role, "resource", resource)
	return errors.NewPermissionDeniedError("insufficient permissions", "requires "+resource.String())
}

// Sections lists the dashboard areas role may open, in navigation order.
func (s *Service) Sections(role string) []Section {
	out := []Section{}
	for _, r := range permission.Resources() {
		if s.HasCapability(role, r) {
			out = append(out, sections[r])
		}
	}
	return out
}

// Matrix lists every known role with its capabilities.
func (s *Service) Matrix() []RoleCapabilities {
	roles := permission.Roles()
	out := make([]RoleCapabilities, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleCapabilities{Role: r.String(), Capabilities: permission.Resolve(r.String())})
	}
	return out
}
