package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/shared/logger"
)

var _ permission.PermissionEnforcer = (*Enforcer)(nil)

const rbacModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds an in-memory enforcer seeded from the static capability
// table. When db is non-nil the policy is also written to casbin_rule so other
// services sharing the database see the same grants.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	var enforcer *casbin.Enforcer
	if db != nil {
		adapter, err := gormadapter.NewAdapterByDB(db)
		if err != nil {
			return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
		}
		enforcer, err = casbin.NewEnforcer(m, adapter)
		if err != nil {
			return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
		}
		// casbin_rule is written only by SavePolicy in seed.
		enforcer.EnableAutoSave(false)
	} else {
		enforcer, err = casbin.NewEnforcer(m)
		if err != nil {
			return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
		}
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}
	if err := e.seed(db != nil); err != nil {
		return nil, err
	}
	return e, nil
}

// seed replaces whatever policy is loaded with the static table.
func (e *Enforcer) seed(persist bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.enforcer.ClearPolicy()
	for _, policy := range permission.Policies() {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1])
			return fmt.Errorf("failed to add policy [%s, %s]: %w", policy[0], policy[1], err)
		}
	}

	if persist {
		if err := e.enforcer.SavePolicy(); err != nil {
			e.logger.Errorw("failed to save permission policies", "error", err)
			return fmt.Errorf("failed to save permission policies: %w", err)
		}
	}

	e.logger.Infow("permission policies initialized", "count", len(permission.Policies()), "persisted", persist)
	return nil
}

func (e *Enforcer) Enforce(role string, resource permission.Resource) (bool, error) {
	normalized := permission.NormalizeRole(role)
	if normalized == "" {
		return false, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(normalized.String(), resource.String())
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", normalized, "resource", resource)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) GetPermissionsForRole(role string) ([]permission.Resource, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules, err := e.enforcer.GetPermissionsForUser(permission.NormalizeRole(role).String())
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for role: %w", err)
	}

	resources := make([]permission.Resource, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 2 {
			continue
		}
		resources = append(resources, permission.Resource(rule[1]))
	}
	return resources, nil
}

// LoadPolicy re-seeds the enforcer from the static table.
func (e *Enforcer) LoadPolicy() error {
	if err := e.seed(false); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	e.logger.Info("policy reloaded successfully")
	return nil
}
