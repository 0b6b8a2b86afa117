// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"time"

	"github.com/taibuivan/fornello/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the ordering platform.
//
// Every newly registered user holds exactly one diner grant; franchisee and
// admin grants are only ever added externally (franchise creation, roster
// elevation).
type User struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"` // Explicitly omitted from JSON for security.
	Roles        []sec.RoleGrant `json:"roles"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

// Identity projects the user record into the guard's context claim.
func (user *User) Identity() *sec.Identity {
	return &sec.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Roles:  user.Roles,
	}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)
