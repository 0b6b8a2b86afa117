// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Every lookup hydrates the user's role grants, since authorization always
// needs them and they are re-read on every authenticated request.
type UserRepository interface {

	/*
		Create persists a brand-new user account together with its initial
		diner role grant in one atomic operation.

		Parameters:
		  - context: context.Context
		  - user: *User (ID is assigned by the store, never reused)

		Returns:
		  - error: Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByEmail returns the account with the given email, roles included.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID returns the account with the given ID, roles included.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)
}

// # Revocation Data Access

// RevocationRepository is the credential denylist.
//
// # Invariants
//
//   - Revoke is idempotent: recording an already-revoked identifier is a
//     no-op success.
//   - Once recorded, an identifier is permanently invalid. There is no
//     un-revoke operation.
//   - IsRevoked must observe any preceding Revoke immediately, including one
//     issued by a different concurrent request.
type RevocationRepository interface {

	/*
		Revoke permanently records a credential identifier as invalid.

		Parameters:
		  - context: context.Context
		  - credentialID: string (digest of the raw token)

		Returns:
		  - error: Persistence failures only, never "already revoked"
	*/
	Revoke(context context.Context, credentialID string) error

	/*
		IsRevoked reports whether a credential identifier has been revoked.

		Parameters:
		  - context: context.Context
		  - credentialID: string

		Returns:
		  - bool: true if the credential must be treated as invalid
		  - error: Retrieval failures
	*/
	IsRevoked(context context.Context, credentialID string) (bool, error)
}
