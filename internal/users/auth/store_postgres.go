// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/sec"
)

// pgUniqueViolation is the SQLSTATE for a unique-constraint breach.
const pgUniqueViolation = "23505"

// PostgresUserRepository implements the [UserRepository] interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new account and its initial diner grant atomically.

Description: Runs a single transaction inserting into users.account (the
database assigns the ID from a sequence that never reuses values) and
users.rolegrant. A duplicate email maps to a client-safe Conflict.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.Conflict or persistence failures
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const insertAccount = `
		INSERT INTO users.account (name, email, passwordhash, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	const insertGrant = `
		INSERT INTO users.rolegrant (userid, role)
		VALUES ($1, $2)`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_begin_failed: %w", err)
	}
	defer func() { _ = tx.Rollback(context) }()

	err = tx.QueryRow(context, insertAccount,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgUniqueViolation {
			return apperr.Conflict("email is already registered")
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	if _, err := tx.Exec(context, insertGrant, user.ID, sec.RoleDiner); err != nil {
		return fmt.Errorf("postgres_user_repo_grant_failed: %w", err)
	}

	if err := tx.Commit(context); err != nil {
		return fmt.Errorf("postgres_user_repo_commit_failed: %w", err)
	}

	user.Roles = []sec.RoleGrant{{Role: sec.RoleDiner}}
	return nil
}

/*
FindByEmail retrieves an account (roles included) by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, name, email, passwordhash, createdat, updatedat
		FROM users.account
		WHERE email = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	if err := repository.loadRoles(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

/*
FindByID retrieves an account (roles included) by its primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	const query = `
		SELECT id, name, email, passwordhash, createdat, updatedat
		FROM users.account
		WHERE id = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	if err := repository.loadRoles(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// loadRoles hydrates the role grants for a user.
//
// Franchisee grants carry their franchise scope; unscoped grants read the
// franchiseid column as zero.
func (repository *PostgresUserRepository) loadRoles(context context.Context, user *User) error {
	const query = `
		SELECT role, COALESCE(franchiseid, 0)
		FROM users.rolegrant
		WHERE userid = $1
		ORDER BY id`

	rows, err := repository.pool.Query(context, query, user.ID)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_load_roles_failed: %w", err)
	}
	defer rows.Close()

	grants := []sec.RoleGrant{}
	for rows.Next() {
		grant := sec.RoleGrant{}
		if err := rows.Scan(&grant.Role, &grant.FranchiseID); err != nil {
			return fmt.Errorf("postgres_user_repo_scan_role_failed: %w", err)
		}
		grants = append(grants, grant)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("postgres_user_repo_roles_rows_failed: %w", err)
	}

	user.Roles = grants
	return nil
}
