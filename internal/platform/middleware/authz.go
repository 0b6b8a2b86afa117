// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/constants"
	"github.com/taibuivan/fornello/internal/platform/ctxutil"
	"github.com/taibuivan/fornello/internal/platform/respond"
	"github.com/taibuivan/fornello/internal/platform/sec"
)

// # Guard Contracts

// TokenVerifier checks the signature of a raw bearer token and yields the
// subject user ID.
//
// # Why an interface?
//
// Declaring the contract here decouples the guard from [sec.TokenService],
// allowing mocks to be injected during handler tests.
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}

// RevocationChecker reports whether a credential identifier has been revoked.
//
// # Consistency
//
// Implementations must observe their own immediately-preceding revoke from
// any concurrent request: a logout must be indistinguishable from "never
// had a credential" for the very next check.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, credentialID string) (bool, error)
}

// IdentityResolver loads the current identity (user + role grants) from the
// authoritative user record.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID int64) (*sec.Identity, error)
}

// Authenticate is the authorization guard run in front of every route.
//
// # Flow
//
//  1. No Authorization header: the request proceeds as anonymous. Public
//     routes serve it; protected routes reject it at [RequireAuth].
//  2. Header present but not 'Bearer <token>': uniform 401.
//  3. Signature verification via [TokenVerifier]: failure is a uniform 401 —
//     malformed and bad-signature are deliberately indistinguishable.
//  4. Denylist check via [RevocationChecker] on the credential identifier:
//     revoked is the same uniform 401.
//  5. Role resolution via [IdentityResolver]: grants are read live from the
//     user record, never from the token, so revocations of role or scope take
//     effect on this very request.
//  6. The [*sec.Identity] (with its credential identifier) is attached to the
//     request context for downstream use.
func Authenticate(verifier TokenVerifier, revocations RevocationChecker, identities IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.ErrUnauthorized)
				return
			}

			// ── 3. Signature Verification ─────────────────────────────────────
			rawToken := parts[1]
			userID, err := verifier.Verify(rawToken)
			if err != nil {
				respond.Error(writer, request, apperr.ErrUnauthorized)
				return
			}

			// ── 4. Revocation Check ───────────────────────────────────────────
			credentialID := sec.HashToken(rawToken)
			revoked, err := revocations.IsRevoked(request.Context(), credentialID)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}
			if revoked {
				respond.Error(writer, request, apperr.ErrUnauthorized)
				return
			}

			// ── 5. Live Role Resolution ───────────────────────────────────────
			identity, err := identities.ResolveIdentity(request.Context(), userID)
			if err != nil {
				// A valid signature for a vanished user is still just a bad
				// credential from the caller's perspective.
				if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
					respond.Error(writer, request, apperr.ErrUnauthorized)
					return
				}
				respond.Error(writer, request, apperr.Internal(err))
				return
			}

			// ── 6. Context Injection ──────────────────────────────────────────
			identity.CredentialID = credentialID
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			respond.Error(writer, request, apperr.ErrUnauthorized)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
