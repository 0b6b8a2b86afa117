// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package franchise

import (
	"context"
	"fmt"

	"github.com/taibuivan/fornello/pkg/pagination"
)

// Service implements the franchise hierarchy use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its storage dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Franchise Lifecycle

/*
Create resolves the requested admins and persists a new franchise.

Description: Admin membership is keyed by user ID; the emails in the
request are resolved to identities here, once, and the resulting franchisee
grants store only IDs. An unknown email fails the whole operation before
anything is written.

Parameters:
  - context: context.Context
  - name: string
  - adminEmails: []string

Returns:
  - *Franchise: Created franchise with resolved admin identities
  - error: apperr.NotFound for an unknown admin email, Conflict, or storage failures
*/
func (service *Service) Create(context context.Context, name string, adminEmails []string) (*Franchise, error) {
	admins := make([]Admin, 0, len(adminEmails))
	for _, email := range adminEmails {
		admin, err := service.repository.FindAdminByEmail(context, email)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *admin)
	}

	franchise := &Franchise{
		Name:   name,
		Admins: admins,
		Stores: []Store{},
	}

	if err := service.repository.Create(context, franchise); err != nil {
		return nil, err
	}

	return franchise, nil
}

/*
List returns one public page of franchises.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*Franchise: Page content (never nil)
  - bool: Whether more pages exist
  - error: Storage failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]*Franchise, bool, error) {
	franchises, more, err := service.repository.List(context, params.Limit, params.Offset())
	if err != nil {
		return nil, false, fmt.Errorf("franchise_service_list_failed: %w", err)
	}

	if franchises == nil {
		franchises = []*Franchise{}
	}

	return franchises, more, nil
}

/*
ListForUser returns the franchises administered by a user.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []*Franchise: Administered franchises (never nil)
  - error: Storage failures
*/
func (service *Service) ListForUser(context context.Context, userID int64) ([]*Franchise, error) {
	franchises, err := service.repository.ListForUser(context, userID)
	if err != nil {
		return nil, fmt.Errorf("franchise_service_list_for_user_failed: %w", err)
	}

	if franchises == nil {
		franchises = []*Franchise{}
	}

	return franchises, nil
}

/*
Delete removes a franchise and everything under it.

Description: The cascade (stores, franchisee grants, the franchise row) is a
single transaction; no store may survive its parent, and a failed delete
changes nothing.

Parameters:
  - context: context.Context
  - franchiseID: int64

Returns:
  - error: apperr.NotFound if the franchise does not exist
*/
func (service *Service) Delete(context context.Context, franchiseID int64) error {
	return service.repository.Delete(context, franchiseID)
}

// # Store Lifecycle

/*
CreateStore appends a store under a franchise.

Parameters:
  - context: context.Context
  - franchiseID: int64
  - name: string

Returns:
  - *Store: Created store
  - error: apperr.NotFound if the franchise does not exist
*/
func (service *Service) CreateStore(context context.Context, franchiseID int64, name string) (*Store, error) {
	return service.repository.CreateStore(context, franchiseID, name)
}

/*
DeleteStore removes a store under a franchise.

Parameters:
  - context: context.Context
  - franchiseID: int64
  - storeID: int64

Returns:
  - error: apperr.NotFound if the store does not exist under that franchise
*/
func (service *Service) DeleteStore(context context.Context, franchiseID, storeID int64) error {
	return service.repository.DeleteStore(context, franchiseID, storeID)
}
