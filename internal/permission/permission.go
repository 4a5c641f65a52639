// Package permission answers "can this actor perform this action on this
// resource" for every portal surface. It is a pure predicate over actor
// state: absence of data yields false, never an error, so callers render
// disabled controls or reject the action rather than handling failures.
package permission

import "go-careerhub-backend/internal/domain"

type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

// Check implements the portal policy. Unknown actions and unknown resource
// kinds default to false for every role except admin.
func (c *Checker) Check(actor *domain.Actor, action domain.Action, kind domain.ResourceKind, resourceID string) bool {
	if actor == nil {
		return false
	}

	switch actor.Role {
	case domain.RoleAdmin:
		return true

	case domain.RoleEmployer:
		if action == domain.ActionCreate {
			return kind == domain.KindCompany || kind == domain.KindEvent || kind == domain.KindJob
		}
		if action == domain.ActionEdit || action == domain.ActionDelete {
			switch kind {
			case domain.KindCompany:
				return actor.CompanyID != "" && actor.CompanyID == resourceID
			case domain.KindJob:
				return actor.ManagesJob(resourceID)
			case domain.KindEvent:
				return actor.ManagesEvent(resourceID)
			}
			return false
		}
		return action == domain.ActionRead || action == domain.ActionSave

	case domain.RoleStudent:
		return action == domain.ActionRead || action == domain.ActionSave

	default:
		return false
	}
}

func (c *Checker) HasRole(actor *domain.Actor, role domain.Role) bool {
	return actor != nil && actor.Role == role
}
