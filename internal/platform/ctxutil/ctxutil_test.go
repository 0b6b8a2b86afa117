// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fornello/internal/platform/ctxutil"
	"github.com/taibuivan/fornello/internal/platform/sec"
)

/*
TestRequestID_RoundTrip checks storage and retrieval of the request ID.
*/
func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger_FallsBackToDefault checks that a bare context yields the global
default logger instead of nil.
*/
func TestLogger_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, ctxutil.GetLogger(context.Background()))

	custom := slog.Default().With(slog.String("scope", "test"))
	ctx := ctxutil.WithLogger(context.Background(), custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestIdentity_AnonymousIsNil checks that a bare context reads back as an
anonymous caller.
*/
func TestIdentity_AnonymousIsNil(t *testing.T) {
	assert.Nil(t, ctxutil.GetIdentity(context.Background()))

	identity := &sec.Identity{
		UserID: 1,
		Roles:  []sec.RoleGrant{{Role: sec.RoleDiner}},
	}
	ctx := ctxutil.WithIdentity(context.Background(), identity)
	assert.Same(t, identity, ctxutil.GetIdentity(ctx))
}
