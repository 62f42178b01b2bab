// Package policy contains the authorization rules of the service as pure
// functions, one per (entity, operation). Each returns a tagged Decision so
// the rules can be tested without transport or storage.
//
// The rules deliberately differ per entity on how a cross-company target is
// reported: company reads expose the mismatch as Forbidden, user reads hide
// the other tenant behind NotFound, task reads expose it as Forbidden again.
package policy

import (
	"todo-service/internal/model"

	"github.com/google/uuid"
)

// Effect is the outcome tag of an authorization decision.
type Effect int

const (
	EffectAllow Effect = iota
	EffectForbidden
	EffectNotFound
)

// Decision is the result of evaluating a rule for one principal and target.
type Decision struct {
	Effect Effect
	Detail string
}

// Allowed reports whether the decision permits the operation.
func (d Decision) Allowed() bool {
	return d.Effect == EffectAllow
}

func allow() Decision {
	return Decision{Effect: EffectAllow}
}

func forbidden(detail string) Decision {
	return Decision{Effect: EffectForbidden, Detail: detail}
}

func notFound(detail string) Decision {
	return Decision{Effect: EffectNotFound, Detail: detail}
}

// Principal is the resolved acting user an authorization decision is
// evaluated against.
type Principal struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	IsAdmin   bool
}

// PrincipalFromUser builds a Principal from a resolved user row.
func PrincipalFromUser(u *model.User) Principal {
	return Principal{ID: u.ID, CompanyID: u.CompanyID, IsAdmin: u.IsAdmin}
}

// ReadCompany decides whether p may read the company with the given id.
// Cross-company reads are rejected explicitly rather than hidden.
func ReadCompany(p Principal, companyID uuid.UUID) Decision {
	if companyID != p.CompanyID {
		return forbidden("Not allowed across companies")
	}
	return allow()
}

// UpdateCompany decides whether p may update the company with the given id.
// The cross-company check takes precedence over the admin check.
func UpdateCompany(p Principal, companyID uuid.UUID) Decision {
	if companyID != p.CompanyID {
		return forbidden("Not allowed across companies")
	}
	if !p.IsAdmin {
		return forbidden("Admin only")
	}
	return allow()
}

// CreateCompany decides whether p may create a new company. Any admin may;
// there is no separate superuser capability.
func CreateCompany(p Principal) Decision {
	if !p.IsAdmin {
		return forbidden("Admin only")
	}
	return allow()
}

// ListUsers decides whether p may list the members of its own company.
func ListUsers(p Principal) Decision {
	if !p.IsAdmin {
		return forbidden("Admin only")
	}
	return allow()
}

// ReadUser decides whether p may read the target user. An absent target and a
// target in another company are both reported as NotFound, keeping other
// tenants opaque.
func ReadUser(p Principal, target *model.User) Decision {
	if target == nil || target.CompanyID != p.CompanyID {
		return notFound("User not found")
	}
	return allow()
}

// CreateUser decides whether p may create a member in its own company.
func CreateUser(p Principal) Decision {
	if !p.IsAdmin {
		return forbidden("Admin only")
	}
	return allow()
}

// UpdateUser decides whether p may update the target user: admins may update
// any member of their company, everyone may update themselves.
func UpdateUser(p Principal, target *model.User) Decision {
	if target == nil || target.CompanyID != p.CompanyID {
		return notFound("User not found")
	}
	if !p.IsAdmin && target.ID != p.ID {
		return forbidden("Not allowed")
	}
	return allow()
}

// DeleteUser decides whether p may delete the target user.
func DeleteUser(p Principal, target *model.User) Decision {
	if !p.IsAdmin {
		return forbidden("Admin only")
	}
	if target == nil || target.CompanyID != p.CompanyID {
		return notFound("User not found")
	}
	return allow()
}

// AccessTask decides whether p may read, update or delete the target task.
// All three operations share one rule: same company, then owner-or-admin.
func AccessTask(p Principal, target *model.Task) Decision {
	if target == nil {
		return notFound("Task not found")
	}
	if target.CompanyID != p.CompanyID {
		return forbidden("Cross-company access denied")
	}
	if !p.IsAdmin && target.UserID != p.ID {
		return forbidden("Not allowed")
	}
	return allow()
}
