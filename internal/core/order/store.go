// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import "context"

// Repository persists the menu catalog and diner orders.
type Repository interface {
	/*
		Menu returns the full catalog.

		Parameters:
		  - context: context.Context

		Returns:
		  - []MenuItem: All catalog entries (never nil)
		  - error: Storage failures
	*/
	Menu(context context.Context) ([]MenuItem, error)

	/*
		AddMenuItem appends a catalog entry.

		Parameters:
		  - context: context.Context
		  - item: *MenuItem (ID is assigned on insert)

		Returns:
		  - error: Storage failures
	*/
	AddMenuItem(context context.Context, item *MenuItem) error

	/*
		OrdersForUser returns one page of a diner's order history, oldest
		first, items included.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - limit: int
		  - offset: int

		Returns:
		  - []*Order: Page content (never nil)
		  - bool: Whether more pages exist
		  - error: Storage failures
	*/
	OrdersForUser(context context.Context, userID int64, limit, offset int) ([]*Order, bool, error)

	/*
		CreateOrder persists the order and its items, then runs submit
		inside the same transaction. If submit returns an error nothing is
		committed; a diner never owns an order the factory did not accept.

		Parameters:
		  - context: context.Context
		  - order: *Order (ID, item IDs, and Date are assigned on insert)
		  - submit: func(*Order) (string, error): factory call, returns the
		    fulfillment token recorded with the order

		Returns:
		  - error: The submit error verbatim, or storage failures
	*/
	CreateOrder(context context.Context, order *Order, submit func(*Order) (string, error)) error
}
