// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"

	"github.com/taibuivan/fornello/internal/platform/sec"
	"github.com/taibuivan/fornello/pkg/pagination"
)

// Service implements the menu and order use cases.
type Service struct {
	repository Repository
	factory    FactoryClient
}

func NewService(repository Repository, factory FactoryClient) *Service {
	return &Service{repository: repository, factory: factory}
}

// # Menu

func (service *Service) Menu(context context.Context) ([]MenuItem, error) {
	menu, err := service.repository.Menu(context)
	if err != nil {
		return nil, fmt.Errorf("order_service_menu_failed: %w", err)
	}

	if menu == nil {
		menu = []MenuItem{}
	}

	return menu, nil
}

/*
AddMenuItem appends a catalog entry and returns the updated menu.

Parameters:
  - context: context.Context
  - item: *MenuItem

Returns:
  - []MenuItem: The full menu after the insert
  - error: Storage failures
*/
func (service *Service) AddMenuItem(context context.Context, item *MenuItem) ([]MenuItem, error) {
	if err := service.repository.AddMenuItem(context, item); err != nil {
		return nil, err
	}

	return service.Menu(context)
}

// # Orders

func (service *Service) OrdersForUser(context context.Context, userID int64, params pagination.Params) ([]*Order, bool, error) {
	orders, more, err := service.repository.OrdersForUser(context, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, false, fmt.Errorf("order_service_list_failed: %w", err)
	}

	if orders == nil {
		orders = []*Order{}
	}

	return orders, more, nil
}

/*
Create persists the diner's order and submits it to the fulfillment factory.

Description: The order rows and the factory round trip share one
transaction. A factory failure surfaces as the upstream error and the order
does not exist afterwards.

Parameters:
  - context: context.Context
  - identity: *sec.Identity, the ordering diner
  - order: *Order with franchise, store, and items from the request

Returns:
  - string: Factory fulfillment token
  - error: apperr.Upstream on factory failure, or storage failures
*/
func (service *Service) Create(context context.Context, identity *sec.Identity, order *Order) (string, error) {
	order.UserID = identity.UserID

	diner := Diner{
		ID:    identity.UserID,
		Name:  identity.Name,
		Email: identity.Email,
	}

	var factoryToken string
	err := service.repository.CreateOrder(context, order, func(created *Order) (string, error) {
		token, err := service.factory.Submit(context, diner, created)
		if err != nil {
			return "", err
		}
		factoryToken = token
		return token, nil
	})
	if err != nil {
		return "", err
	}

	return factoryToken, nil
}
