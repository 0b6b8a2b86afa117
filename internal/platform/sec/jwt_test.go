// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fornello/internal/platform/sec"
)

var compactTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

/*
TestTokenService_IssueVerify_RoundTrip checks that an issued token verifies
back to the same subject.
*/
func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	service := sec.NewTokenService("test-secret", "fornello.app")

	token, err := service.Issue(42)
	require.NoError(t, err)
	assert.Regexp(t, compactTokenPattern, token)

	userID, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

/*
TestTokenService_Verify_Rejections covers the invalid-credential paths:
garbage input, wrong-secret signatures, and tampered payloads.
*/
func TestTokenService_Verify_Rejections(t *testing.T) {
	service := sec.NewTokenService("test-secret", "fornello.app")

	t.Run("garbage", func(t *testing.T) {
		_, err := service.Verify("not-a-token")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := service.Verify("")
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other := sec.NewTokenService("different-secret", "fornello.app")
		token, err := other.Issue(42)
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.Error(t, err)
	})

	t.Run("tampered_payload", func(t *testing.T) {
		token, err := service.Issue(42)
		require.NoError(t, err)

		segments := strings.Split(token, ".")
		require.Len(t, segments, 3)
		segments[1] = segments[1][:len(segments[1])-2] + "xx"

		_, err = service.Verify(strings.Join(segments, "."))
		assert.Error(t, err)
	})
}

/*
TestTokenService_SubjectsAreDistinct checks that different users map to
different tokens and different denylist keys, so revoking one user's
credential cannot touch another's.
*/
func TestTokenService_SubjectsAreDistinct(t *testing.T) {
	service := sec.NewTokenService("test-secret", "fornello.app")

	first, err := service.Issue(7)
	require.NoError(t, err)

	second, err := service.Issue(8)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, sec.HashToken(first), sec.HashToken(second))
}
