// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package order covers the menu catalog and diner order intake.

An order is accepted only once the fulfillment factory has confirmed it;
persistence and factory submission succeed or fail together.
*/
package order

import "time"

// MenuItem is one orderable catalog entry.
type MenuItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Order is a diner order placed against one store of one franchise.
type Order struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	FranchiseID int64     `json:"franchiseId"`
	StoreID     int64     `json:"storeId"`
	Items       []Item    `json:"items"`
	Date        time.Time `json:"date"`
}

// Item is one order line. Description and price are copied from the menu at
// order time so later catalog edits do not rewrite order history.
type Item struct {
	ID          int64   `json:"id,omitempty"`
	MenuID      int64   `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// # Client-Facing Messages

const (
	MessageUnableAddMenuItem = "unable to add menu item"
)
