// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryListMenu = `
		SELECT id, title, description, price, image
		FROM core.menuitem
		ORDER BY id`

	queryInsertMenuItem = `
		INSERT INTO core.menuitem (title, description, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	queryListOrders = `
		SELECT id, franchiseid, storeid, createdat
		FROM core.dinerorder
		WHERE userid = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	queryListOrderItems = `
		SELECT id, menuid, description, price
		FROM core.orderitem
		WHERE orderid = $1
		ORDER BY id`

	queryInsertOrder = `
		INSERT INTO core.dinerorder (userid, franchiseid, storeid, factorytoken)
		VALUES ($1, $2, $3, $4)
		RETURNING id, createdat`

	queryInsertOrderItem = `
		INSERT INTO core.orderitem (orderid, menuid, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	queryUpdateFactoryToken = `
		UPDATE core.dinerorder
		SET factorytoken = $2
		WHERE id = $1`
)

// PostgresRepository persists the menu and diner orders in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Menu(context context.Context) ([]MenuItem, error) {
	rows, err := repository.pool.Query(context, queryListMenu)
	if err != nil {
		return nil, fmt.Errorf("postgres_order_repo_menu_failed: %w", err)
	}
	defer rows.Close()

	menu := []MenuItem{}
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Image); err != nil {
			return nil, fmt.Errorf("postgres_order_repo_scan_failed: %w", err)
		}
		menu = append(menu, item)
	}

	return menu, rows.Err()
}

func (repository *PostgresRepository) AddMenuItem(context context.Context, item *MenuItem) error {
	err := repository.pool.QueryRow(context, queryInsertMenuItem,
		item.Title, item.Description, item.Price, item.Image).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("postgres_order_repo_add_menu_item_failed: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) OrdersForUser(context context.Context, userID int64, limit, offset int) ([]*Order, bool, error) {
	rows, err := repository.pool.Query(context, queryListOrders, userID, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("postgres_order_repo_list_failed: %w", err)
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		order := Order{UserID: userID}
		if err := rows.Scan(&order.ID, &order.FranchiseID, &order.StoreID, &order.Date); err != nil {
			return nil, false, fmt.Errorf("postgres_order_repo_scan_failed: %w", err)
		}
		order.Items = []Item{}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("postgres_order_repo_rows_failed: %w", err)
	}

	more := len(orders) > limit
	if more {
		orders = orders[:limit]
	}

	for _, order := range orders {
		items, err := repository.itemsOf(context, order.ID)
		if err != nil {
			return nil, false, err
		}
		order.Items = items
	}

	return orders, more, nil
}

// CreateOrder holds the order rows inside an open transaction across the
// factory call, so a factory refusal rolls everything back.
func (repository *PostgresRepository) CreateOrder(context context.Context, order *Order, submit func(*Order) (string, error)) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_order_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	err = transaction.QueryRow(context, queryInsertOrder,
		order.UserID, order.FranchiseID, order.StoreID, "").
		Scan(&order.ID, &order.Date)
	if err != nil {
		return fmt.Errorf("postgres_order_repo_create_failed: %w", err)
	}

	for index := range order.Items {
		item := &order.Items[index]
		err = transaction.QueryRow(context, queryInsertOrderItem,
			order.ID, item.MenuID, item.Description, item.Price).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("postgres_order_repo_create_item_failed: %w", err)
		}
	}

	factoryToken, err := submit(order)
	if err != nil {
		return err
	}

	if _, err := transaction.Exec(context, queryUpdateFactoryToken, order.ID, factoryToken); err != nil {
		return fmt.Errorf("postgres_order_repo_record_token_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_order_repo_commit_failed: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) itemsOf(context context.Context, orderID int64) ([]Item, error) {
	rows, err := repository.pool.Query(context, queryListOrderItems, orderID)
	if err != nil {
		return nil, fmt.Errorf("postgres_order_repo_items_failed: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.MenuID, &item.Description, &item.Price); err != nil {
			return nil, fmt.Errorf("postgres_order_repo_scan_failed: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
