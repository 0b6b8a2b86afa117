// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/respond"
)

/*
TestError_MessageShape checks that every error collapses into the
{"message": ...} envelope with the mapped status code.
*/
func TestError_MessageShape(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", apperr.ValidationError("name is required"), http.StatusBadRequest, "name is required"},
		{"unauthorized", apperr.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperr.Forbidden("unable to create a store"), http.StatusForbidden, "unable to create a store"},
		{"not_found", apperr.NotFound("franchise not found"), http.StatusNotFound, "franchise not found"},
		{"conflict", apperr.Conflict("email is already registered"), http.StatusConflict, "email is already registered"},
		{"upstream", apperr.Upstream("failed to fulfill order at factory", errors.New("dial tcp")), http.StatusInternalServerError, "failed to fulfill order at factory"},
		{"opaque_internal", errors.New("pq: connection reset"), http.StatusInternalServerError, "an unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, recorder.Body.String())
		})
	}
}

/*
TestOK_FlatPayload checks that success bodies are written without an
envelope.
*/
func TestOK_FlatPayload(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]any{"id": 1, "name": "pizzaPocket"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":1,"name":"pizzaPocket"}`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}

/*
TestMessage_Envelope checks the message-only success shape.
*/
func TestMessage_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Message(recorder, "logout successful")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"logout successful"}`, recorder.Body.String())
}
