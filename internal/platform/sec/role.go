// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Role Model

// RoleKind identifies one of the closed set of role variants.
//
// The set is deliberately closed: the permission engine pattern-matches on
// the variant instead of scanning for string equality, so a new role cannot
// be introduced without also deciding what it is allowed to do.
type RoleKind string

const (
	// Default role for every newly registered user. May place orders,
	// no administrative capability.
	RoleDiner RoleKind = "diner"

	// Scoped role: may manage stores within the franchises it administers.
	RoleFranchisee RoleKind = "franchisee"

	// Global role: satisfies every scoped permission check unconditionally.
	RoleAdmin RoleKind = "admin"
)

// RoleGrant is a single granted role variant.
//
// # Scope
//
// Diner and Admin grants carry no scope. A Franchisee grant is scoped to
// exactly one franchise; a user administering several franchises holds one
// grant per franchise. FranchiseID is zero for unscoped grants and omitted
// from JSON.
type RoleGrant struct {
	Role        RoleKind `json:"role"`
	FranchiseID int64    `json:"objectId,omitempty"`
}

// Identity is the authenticated principal attached to the request context by
// the authorization guard.
//
// # Authority
//
// Roles are resolved live from the user record at guard time, never decoded
// from the credential. Downstream code must read identity from the context
// instead of re-deriving it.
type Identity struct {
	UserID int64       `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Roles  []RoleGrant `json:"roles"`

	// CredentialID is the denylist key of the presented token. Set by the
	// guard so logout can revoke the exact credential it was called with.
	CredentialID string `json:"-"`
}

// IsAdmin reports whether the identity holds the global admin role.
func (identity *Identity) IsAdmin() bool {
	for _, grant := range identity.Roles {
		if grant.Role == RoleAdmin {
			return true
		}
	}
	return false
}

// IsFranchiseeOf reports whether the identity holds a franchisee grant scoped
// to the given franchise. Admin is deliberately NOT implied here — callers
// that want the admin override go through [Check].
func (identity *Identity) IsFranchiseeOf(franchiseID int64) bool {
	for _, grant := range identity.Roles {
		if grant.Role == RoleFranchisee && grant.FranchiseID == franchiseID {
			return true
		}
	}
	return false
}
