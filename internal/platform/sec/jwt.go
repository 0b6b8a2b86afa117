// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives, the role model, and token
// management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing,
// permission evaluation) from the domain logic. It is pure infrastructure:
// nothing in here performs I/O, so token issuance and verification never
// block and the permission engine can be exercised exhaustively in tests.
package sec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the payload embedded inside a bearer token.
//
// # Why so small?
//
// The credential binds only the subject and the issue time, never the role
// set. Roles are re-resolved from the authoritative user record on every
// request, so a role change or a new franchise-admin grant takes effect on
// the very next request without re-issuing credentials.
type tokenClaims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-SHA256 signed bearer credentials.
//
// Tokens carry no expiry: revocation via the denylist is the only way a
// credential becomes invalid.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a TokenService signing with the given shared secret.
func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

/*
Issue produces a signed compact token binding the given user identity.

Description: The result has the standard three-segment JWT shape
(header.payload.signature) and never fails for a valid user ID.

Parameters:
  - userID: int64

Returns:
  - string: Signed compact token
  - error: Signing failures only
*/
func (service *TokenService) Issue(userID int64) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(userID, 10),
			Issuer:   service.issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

/*
Verify checks the signature and structure of a raw compact token.

Description: Fails if the artifact is malformed, unsigned, or the signature
does not match. It does NOT consult the revocation denylist; that is the
caller's responsibility (the authorization guard).

Parameters:
  - raw: string

Returns:
  - int64: Subject user ID
  - error: Invalid-credential failures
*/
func (service *TokenService) Verify(raw string) (int64, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return 0, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("sec: invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sec: invalid token subject: %w", err)
	}

	return userID, nil
}
