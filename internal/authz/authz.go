// Package authz resolves whether a principal has standing over an operation
// or a resource. Route-level role gates and resource ownership checks both go
// through Authorize.
package authz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

var ErrForbidden = errors.New("forbidden")

// Rule describes who may act.
//
// Roles, when set, restricts the operation to the listed roles. Owners, when
// set, requires ownership standing: the principal must be one of the owners,
// unless Elevated is true and the principal is a superadmin.
type Rule struct {
	Roles    []domain.Role
	Owners   []uuid.UUID
	Elevated bool
}

func Roles(roles ...domain.Role) Rule {
	return Rule{Roles: roles}
}

func OwnedBy(owners ...uuid.UUID) Rule {
	return Rule{Owners: owners}
}

// OwnedByOrElevated grants standing to the owners and to superadmins.
func OwnedByOrElevated(owners ...uuid.UUID) Rule {
	return Rule{Owners: owners, Elevated: true}
}

func SuperadminOnly() Rule {
	return Rule{Roles: []domain.Role{domain.RoleSuperadmin}}
}

func Authorize(p domain.Principal, rule Rule) error {
	if len(rule.Roles) > 0 && !hasRole(p.Role, rule.Roles) {
		return ErrForbidden
	}

	if len(rule.Owners) == 0 {
		return nil
	}

	if rule.Elevated && p.Role == domain.RoleSuperadmin {
		return nil
	}

	for _, owner := range rule.Owners {
		if owner != uuid.Nil && owner == p.ID {
			return nil
		}
	}

	return ErrForbidden
}

func hasRole(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
