// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package franchise

import "context"

// Repository defines the data access contract for the franchise hierarchy.
//
// # Identifier Discipline
//
// All identifiers are assigned by the persistence layer from monotone
// sequences and are never reused, so a deleted franchise's ID can never be
// resurrected by a later create.
type Repository interface {

	/*
		Create persists a new franchise and the franchisee grants for its
		admins in one atomic operation.

		Parameters:
		  - context: context.Context
		  - franchise: *Franchise (Admins pre-resolved to user IDs)

		Returns:
		  - error: Conflict on duplicate name, or persistence failures
	*/
	Create(context context.Context, franchise *Franchise) error

	/*
		FindAdminByEmail resolves an admin email to a user identity.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Admin: Resolved identity
		  - error: apperr.NotFound for an unknown email
	*/
	FindAdminByEmail(context context.Context, email string) (*Admin, error)

	/*
		List returns one page of franchises (stores nested, admins omitted;
		the listing is public) plus a flag reporting whether more pages exist.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Franchise: Page of franchises ordered by ID
		  - bool: true if at least one more page exists
		  - error: Database retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Franchise, bool, error)

	/*
		ListForUser returns every franchise the given user administers, with
		admins and stores nested.

		Parameters:
		  - context: context.Context
		  - userID: int64

		Returns:
		  - []*Franchise: Administered franchises (empty slice when none)
		  - error: Database retrieval failures
	*/
	ListForUser(context context.Context, userID int64) ([]*Franchise, error)

	/*
		Delete atomically removes a franchise, every store under it, and every
		franchisee grant scoped to it. Either everything vanishes or nothing
		changes.

		Parameters:
		  - context: context.Context
		  - franchiseID: int64

		Returns:
		  - error: apperr.NotFound if the franchise does not exist
	*/
	Delete(context context.Context, franchiseID int64) error

	/*
		CreateStore appends a store under an existing franchise.

		Parameters:
		  - context: context.Context
		  - franchiseID: int64
		  - name: string

		Returns:
		  - *Store: Created store with its assigned ID
		  - error: apperr.NotFound if the franchise does not exist
	*/
	CreateStore(context context.Context, franchiseID int64, name string) (*Store, error)

	/*
		DeleteStore removes a single store under the given franchise.

		Parameters:
		  - context: context.Context
		  - franchiseID: int64
		  - storeID: int64

		Returns:
		  - error: apperr.NotFound if the store does not exist under that franchise
	*/
	DeleteStore(context context.Context, franchiseID, storeID int64) error
}
