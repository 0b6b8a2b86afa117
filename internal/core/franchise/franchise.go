// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package franchise implements the two-level resource hierarchy of the
ordering platform: franchises own stores, and franchisee role grants bind
users to the franchises they administer.

# Architecture

  - Service: Orchestrates admin resolution and structural invariants.
  - Repository: pgx-backed storage with transactional cascade deletes.
  - HTTP: Thin transport layer; permission checks run before any existence
    lookup so unauthorized callers never learn what exists.
*/
package franchise

import "time"

// # Domain Entities

// Franchise is a named tenant owning an ordered sequence of stores.
//
// Admins are resolved user identities, derived from the franchisee role
// grants scoped to this franchise. A store can never outlive its parent:
// deletion removes the franchise, its stores, and its grants as one unit.
type Franchise struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Admins    []Admin   `json:"admins,omitempty"`
	Stores    []Store   `json:"stores"`
	CreatedAt time.Time `json:"-"`
}

// Admin is the resolved identity of a franchise administrator.
type Admin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Store is a physical ordering location belonging to exactly one franchise.
type Store struct {
	ID          int64     `json:"id"`
	FranchiseID int64     `json:"franchiseId"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"-"`
}

// # Field Identifiers

const (
	FieldFranchiseName = "name"
	FieldStoreName     = "name"
)

// # Client-Facing Messages

// Each protected action owns its own denial text; these are part of the
// external contract and must not be reworded.
const (
	MessageUnableCreateFranchise = "unable to create a franchise"
	MessageUnableDeleteFranchise = "unable to delete a franchise"
	MessageUnableCreateStore     = "unable to create a store"
	MessageUnableDeleteStore     = "unable to delete a store"
	MessageFranchiseDeleted      = "franchise deleted"
	MessageStoreDeleted          = "store deleted"
)
