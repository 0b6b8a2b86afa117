// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package franchise

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/sec"
)

const (
	queryInsertFranchise = `
		INSERT INTO core.franchise (name)
		VALUES ($1)
		RETURNING id, createdat`

	queryInsertFranchiseeGrant = `
		INSERT INTO users.rolegrant (userid, role, franchiseid)
		VALUES ($1, $2, $3)`

	queryFindAdminByEmail = `
		SELECT id, name, email
		FROM users.account
		WHERE email = $1`

	queryListFranchises = `
		SELECT id, name, createdat
		FROM core.franchise
		ORDER BY id
		LIMIT $1 OFFSET $2`

	queryListFranchiseIDsForUser = `
		SELECT f.id, f.name, f.createdat
		FROM core.franchise f
		JOIN users.rolegrant g ON g.franchiseid = f.id
		WHERE g.userid = $1 AND g.role = $2
		ORDER BY f.id`

	queryListAdmins = `
		SELECT a.id, a.name, a.email
		FROM users.account a
		JOIN users.rolegrant g ON g.userid = a.id
		WHERE g.franchiseid = $1 AND g.role = $2
		ORDER BY a.id`

	queryListStores = `
		SELECT id, franchiseid, name, createdat
		FROM core.store
		WHERE franchiseid = $1
		ORDER BY id`

	queryDeleteStoresOfFranchise = `
		DELETE FROM core.store
		WHERE franchiseid = $1`

	queryDeleteGrantsOfFranchise = `
		DELETE FROM users.rolegrant
		WHERE franchiseid = $1`

	queryDeleteFranchise = `
		DELETE FROM core.franchise
		WHERE id = $1`

	queryInsertStore = `
		INSERT INTO core.store (franchiseid, name)
		VALUES ($1, $2)
		RETURNING id, createdat`

	queryDeleteStore = `
		DELETE FROM core.store
		WHERE id = $1 AND franchiseid = $2`
)

// PostgresRepository persists the franchise hierarchy in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, franchise *Franchise) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_franchise_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	err = transaction.QueryRow(context, queryInsertFranchise, franchise.Name).
		Scan(&franchise.ID, &franchise.CreatedAt)
	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == "23505" {
			return apperr.Conflict("a franchise with that name already exists")
		}
		return fmt.Errorf("postgres_franchise_repo_create_failed: %w", err)
	}

	for _, admin := range franchise.Admins {
		_, err = transaction.Exec(context, queryInsertFranchiseeGrant,
			admin.ID, string(sec.RoleFranchisee), franchise.ID)
		if err != nil {
			return fmt.Errorf("postgres_franchise_repo_grant_failed: %w", err)
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_franchise_repo_commit_failed: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) FindAdminByEmail(context context.Context, email string) (*Admin, error) {
	var admin Admin
	err := repository.pool.QueryRow(context, queryFindAdminByEmail, email).
		Scan(&admin.ID, &admin.Name, &admin.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("unknown user for franchise admin %s provided", email))
		}
		return nil, fmt.Errorf("postgres_franchise_repo_find_admin_failed: %w", err)
	}

	return &admin, nil
}

// List fetches one row past the page boundary to detect whether more pages
// exist without a second count query.
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Franchise, bool, error) {
	rows, err := repository.pool.Query(context, queryListFranchises, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("postgres_franchise_repo_list_failed: %w", err)
	}
	defer rows.Close()

	franchises := []*Franchise{}
	for rows.Next() {
		var franchise Franchise
		if err := rows.Scan(&franchise.ID, &franchise.Name, &franchise.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("postgres_franchise_repo_scan_failed: %w", err)
		}
		franchise.Stores = []Store{}
		franchises = append(franchises, &franchise)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("postgres_franchise_repo_rows_failed: %w", err)
	}

	more := len(franchises) > limit
	if more {
		franchises = franchises[:limit]
	}

	for _, franchise := range franchises {
		stores, err := repository.storesOf(context, franchise.ID)
		if err != nil {
			return nil, false, err
		}
		franchise.Stores = stores
	}

	return franchises, more, nil
}

func (repository *PostgresRepository) ListForUser(context context.Context, userID int64) ([]*Franchise, error) {
	rows, err := repository.pool.Query(context, queryListFranchiseIDsForUser,
		userID, string(sec.RoleFranchisee))
	if err != nil {
		return nil, fmt.Errorf("postgres_franchise_repo_list_for_user_failed: %w", err)
	}
	defer rows.Close()

	franchises := []*Franchise{}
	for rows.Next() {
		var franchise Franchise
		if err := rows.Scan(&franchise.ID, &franchise.Name, &franchise.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres_franchise_repo_scan_failed: %w", err)
		}
		franchises = append(franchises, &franchise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_franchise_repo_rows_failed: %w", err)
	}

	for _, franchise := range franchises {
		admins, err := repository.adminsOf(context, franchise.ID)
		if err != nil {
			return nil, err
		}
		franchise.Admins = admins

		stores, err := repository.storesOf(context, franchise.ID)
		if err != nil {
			return nil, err
		}
		franchise.Stores = stores
	}

	return franchises, nil
}

// Delete removes the franchise with its stores and franchisee grants in one
// transaction, so a failure leaves the hierarchy untouched.
func (repository *PostgresRepository) Delete(context context.Context, franchiseID int64) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_franchise_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	if _, err := transaction.Exec(context, queryDeleteStoresOfFranchise, franchiseID); err != nil {
		return fmt.Errorf("postgres_franchise_repo_delete_stores_failed: %w", err)
	}

	if _, err := transaction.Exec(context, queryDeleteGrantsOfFranchise, franchiseID); err != nil {
		return fmt.Errorf("postgres_franchise_repo_delete_grants_failed: %w", err)
	}

	tag, err := transaction.Exec(context, queryDeleteFranchise, franchiseID)
	if err != nil {
		return fmt.Errorf("postgres_franchise_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("franchise not found")
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_franchise_repo_commit_failed: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) CreateStore(context context.Context, franchiseID int64, name string) (*Store, error) {
	store := &Store{FranchiseID: franchiseID, Name: name}

	err := repository.pool.QueryRow(context, queryInsertStore, franchiseID, name).
		Scan(&store.ID, &store.CreatedAt)
	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == "23503" {
			return nil, apperr.NotFound("franchise not found")
		}
		return nil, fmt.Errorf("postgres_franchise_repo_create_store_failed: %w", err)
	}

	return store, nil
}

func (repository *PostgresRepository) DeleteStore(context context.Context, franchiseID, storeID int64) error {
	tag, err := repository.pool.Exec(context, queryDeleteStore, storeID, franchiseID)
	if err != nil {
		return fmt.Errorf("postgres_franchise_repo_delete_store_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("store not found")
	}

	return nil
}

// # Helpers

func (repository *PostgresRepository) adminsOf(context context.Context, franchiseID int64) ([]Admin, error) {
	rows, err := repository.pool.Query(context, queryListAdmins,
		franchiseID, string(sec.RoleFranchisee))
	if err != nil {
		return nil, fmt.Errorf("postgres_franchise_repo_admins_failed: %w", err)
	}
	defer rows.Close()

	admins := []Admin{}
	for rows.Next() {
		var admin Admin
		if err := rows.Scan(&admin.ID, &admin.Name, &admin.Email); err != nil {
			return nil, fmt.Errorf("postgres_franchise_repo_scan_failed: %w", err)
		}
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

func (repository *PostgresRepository) storesOf(context context.Context, franchiseID int64) ([]Store, error) {
	rows, err := repository.pool.Query(context, queryListStores, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("postgres_franchise_repo_stores_failed: %w", err)
	}
	defer rows.Close()

	stores := []Store{}
	for rows.Next() {
		var store Store
		if err := rows.Scan(&store.ID, &store.FranchiseID, &store.Name, &store.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres_franchise_repo_scan_failed: %w", err)
		}
		stores = append(stores, store)
	}

	return stores, rows.Err()
}
