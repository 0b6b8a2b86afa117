// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fornello/internal/platform/middleware"
	"github.com/taibuivan/fornello/internal/platform/sec"
	"github.com/taibuivan/fornello/internal/users/auth"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// newTestRouter wires the handler behind the real guard, the way the server
// composition root does, so tests observe the externally visible behavior.
func newTestRouter() (http.Handler, *fakeRevocationRepository) {
	users := newFakeUserRepository()
	revocations := newFakeRevocationRepository()
	tokens := sec.NewTokenService("test-secret", "fornello.app")
	service := auth.NewService(users, revocations, tokens)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens, revocations, service))
	router.Mount("/auth", auth.NewHandler(service).Routes())

	return router, revocations
}

func doJSON(t *testing.T, handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

// # Tests

/*
TestRegister_Success checks the registration response shape: the user with
its diner grant, no password material, and a three-segment token.
*/
func TestRegister_Success(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doJSON(t, router, http.MethodPost, "/auth",
		`{"name":"pizza diner","email":"d@jwt.com","password":"diner"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeBody(t, recorder)
	assert.Regexp(t, tokenPattern, payload["token"])

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "pizza diner", user["name"])
	assert.Equal(t, "d@jwt.com", user["email"])
	assert.NotContains(t, recorder.Body.String(), "password")

	roles, ok := user["roles"].([]any)
	require.True(t, ok)
	require.Len(t, roles, 1)
	assert.Equal(t, map[string]any{"role": "diner"}, roles[0])
}

/*
TestRegister_MissingFields checks the fixed 400 message, whichever field is
absent and even for an unparseable body.
*/
func TestRegister_MissingFields(t *testing.T) {
	router, _ := newTestRouter()

	bodies := []string{
		`{"email":"d@jwt.com","password":"diner"}`,
		`{"name":"pizza diner","password":"diner"}`,
		`{"name":"pizza diner","email":"d@jwt.com"}`,
		`{}`,
		`not json at all`,
	}

	for _, body := range bodies {
		recorder := doJSON(t, router, http.MethodPost, "/auth", body, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		payload := decodeBody(t, recorder)
		assert.Equal(t, "name, email, and password are required", payload["message"])
	}
}

/*
TestLogin_Flows covers success and the uniform 401.
*/
func TestLogin_Flows(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doJSON(t, router, http.MethodPost, "/auth",
		`{"name":"pizza diner","email":"d@jwt.com","password":"diner"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	t.Run("success", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPut, "/auth",
			`{"email":"d@jwt.com","password":"diner"}`, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody(t, recorder)
		assert.Regexp(t, tokenPattern, payload["token"])
	})

	t.Run("wrong_password", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPut, "/auth",
			`{"email":"d@jwt.com","password":"wrong"}`, "")
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "unauthorized", decodeBody(t, recorder)["message"])
	})

	t.Run("unknown_email", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPut, "/auth",
			`{"email":"nobody@jwt.com","password":"diner"}`, "")
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "unauthorized", decodeBody(t, recorder)["message"])
	})
}

/*
TestLogout_Finality checks the full revocation story: logout succeeds once,
and the same credential is dead for every subsequent request, including a
second logout.
*/
func TestLogout_Finality(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doJSON(t, router, http.MethodPost, "/auth",
		`{"name":"pizza diner","email":"d@jwt.com","password":"diner"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	token, _ := decodeBody(t, recorder)["token"].(string)
	require.NotEmpty(t, token)

	recorder = doJSON(t, router, http.MethodDelete, "/auth", "", token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "logout successful", decodeBody(t, recorder)["message"])

	// The guard rejects the revoked credential before the handler runs.
	recorder = doJSON(t, router, http.MethodDelete, "/auth", "", token)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "unauthorized", decodeBody(t, recorder)["message"])
}

/*
TestGuard_Rejections checks the uniform 401 for anonymous, malformed, and
forged credentials on a protected route.
*/
func TestGuard_Rejections(t *testing.T) {
	router, _ := newTestRouter()

	t.Run("anonymous", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodDelete, "/auth", "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("not_bearer", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodDelete, "/auth", nil)
		request.Header.Set("Authorization", "Basic abc123")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage_token", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodDelete, "/auth", "", "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("forged_signature", func(t *testing.T) {
		forged := sec.NewTokenService("other-secret", "fornello.app")
		token, err := forged.Issue(1)
		require.NoError(t, err)

		recorder := doJSON(t, router, http.MethodDelete, "/auth", "", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
