// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "github.com/taibuivan/fornello/internal/platform/apperr"

// # Permission Engine

// requirementKind discriminates the closed set of permission requirements.
type requirementKind int

const (
	requirePublic requirementKind = iota
	requireAuthenticated
	requireGlobalAdmin
	requireFranchiseAdmin
)

// Requirement expresses what a protected action demands of the caller.
//
// Construct values with [Public], [Authenticated], [GlobalAdmin], or
// [FranchiseAdminOf]; the zero value is [Public].
type Requirement struct {
	kind        requirementKind
	franchiseID int64
}

// Public requires nothing: no identity is needed.
func Public() Requirement {
	return Requirement{kind: requirePublic}
}

// Authenticated requires any valid, non-revoked identity.
func Authenticated() Requirement {
	return Requirement{kind: requireAuthenticated}
}

// GlobalAdmin requires the global admin role.
func GlobalAdmin() Requirement {
	return Requirement{kind: requireGlobalAdmin}
}

// FranchiseAdminOf requires the global admin role, or a franchisee grant
// whose scope contains the given franchise.
func FranchiseAdminOf(franchiseID int64) Requirement {
	return Requirement{kind: requireFranchiseAdmin, franchiseID: franchiseID}
}

/*
Check evaluates a requirement against an identity.

Description: Pure evaluation over the identity's role grants, no I/O. The
identity may be nil (anonymous caller). A missing identity on a non-public
requirement yields the uniform 401; an authenticated identity with an
insufficient role yields a 403 carrying denialMessage, because each protected
action owns its own denial text.

Parameters:
  - identity: *Identity (nil for anonymous callers)
  - requirement: Requirement
  - denialMessage: string (action-specific 403 message)

Returns:
  - error: nil on allow, *apperr.AppError on deny
*/
func Check(identity *Identity, requirement Requirement, denialMessage string) error {
	if requirement.kind == requirePublic {
		return nil
	}

	// Authentication precedes authorization. The guard normally rejects
	// anonymous callers before a handler runs, but the engine must hold the
	// line on its own.
	if identity == nil {
		return apperr.ErrUnauthorized
	}

	switch requirement.kind {
	case requireAuthenticated:
		return nil

	case requireGlobalAdmin:
		if identity.IsAdmin() {
			return nil
		}
		return apperr.Forbidden(denialMessage)

	case requireFranchiseAdmin:
		if identity.IsAdmin() || identity.IsFranchiseeOf(requirement.franchiseID) {
			return nil
		}
		return apperr.Forbidden(denialMessage)
	}

	return apperr.Forbidden(denialMessage)
}
