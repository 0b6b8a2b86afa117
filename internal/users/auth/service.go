// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the authentication core: issuing bearer credentials,
verifying passwords, and revoking credentials with immediate effect.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Logout).
  - Repository: Abstracted interfaces for Postgres (users) and Redis (denylist).
  - Security: Bcrypt password hashes and HMAC-signed bearer tokens.

The credential never carries roles: the guard calls back into this package
([Service.ResolveIdentity]) on every request so that grants stay authoritative.
*/
package auth

import (
	"context"
	"fmt"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/sec"
)

// # Contracts & Types

// TokenIssuer defines the contract for generating signed bearer credentials.
type TokenIssuer interface {
	// Issue creates a signed compact token binding the given user ID.
	Issue(userID int64) (string, error)
}

// Service implements the authentication and session lifecycle use cases.
//
// # Review Process
//
// This service is the security boundary for every mutating operation in the
// platform. Any change to hashing, issuance, or revocation logic must be
// reviewed by the security team.
type Service struct {
	userRepository       UserRepository
	revocationRepository RevocationRepository
	tokenIssuer          TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	revocationRepo RevocationRepository,
	issuer TokenIssuer,
) *Service {
	return &Service{
		userRepository:       userRepo,
		revocationRepository: revocationRepo,
		tokenIssuer:          issuer,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register hashes, persists, and signs in a brand new user account.

Description: The store assigns the user ID and the single default diner
grant; a bearer credential is issued immediately so registration doubles as
a login.

Parameters:
  - context: context.Context
  - input: RegisterInput (pre-validated by the handler)

Returns:
  - *User: Created entity with its diner grant
  - string: Signed bearer credential
  - error: Conflict (if the email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, string, error) {

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// The repository inserts the account and its diner grant atomically and
	// surfaces a duplicate email as a client-safe Conflict.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, "", err
	}

	token, err := service.tokenIssuer.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("auth_service_issue_failed: %w", err)
	}

	return user, token, nil
}

// # Authentication Flow

/*
Login validates user credentials and issues a bearer credential.

Description: Verifies the password with bcrypt's constant-time comparison.
Both an unknown email and a wrong password produce the same uniform failure
to prevent account enumeration.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *User: Authenticated entity with current role grants
  - string: Signed bearer credential
  - error: the uniform 401, or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (*User, string, error) {
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil, "", apperr.ErrUnauthorized
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperr.ErrUnauthorized
	}

	token, err := service.tokenIssuer.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("auth_service_issue_failed: %w", err)
	}

	return user, token, nil
}

/*
Logout permanently revokes the presented credential.

Description: Records the credential identifier on the denylist. The write is
idempotent and takes effect before this call returns, so the very next
request carrying the same credential is rejected, and a second logout attempt
never even reaches this method (the guard turns it into a 401).

Parameters:
  - context: context.Context
  - credentialID: string (set on the identity by the guard)

Returns:
  - error: Revocation storage failures
*/
func (service *Service) Logout(context context.Context, credentialID string) error {
	if err := service.revocationRepository.Revoke(context, credentialID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}

// # Identity Resolution

/*
ResolveIdentity loads the current identity for a verified user ID.

Description: Called by the authorization guard on every authenticated
request. Reading grants live from the user record, never from the token,
is what makes role and scope changes take effect immediately.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *sec.Identity: Current identity with role grants
  - error: apperr.NotFound if the account vanished, or storage failures
*/
func (service *Service) ResolveIdentity(context context.Context, userID int64) (*sec.Identity, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}
