// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Success payloads are written flat (no envelope) for compatibility with the
// existing ordering clients; every error, whatever its origin, is reduced
// to the same `{"message": "..."}` shape so the surface never leaks internal
// structure.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/ctxutil"
)

// messageEnvelope is the JSON shape for message-only responses and all errors.
type messageEnvelope struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as the body, unwrapped.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Message writes a 200 OK response containing only a message field.
//
// Example:
//
//	respond.Message(writer, "logout successful")
func Message(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, messageEnvelope{Message: message})
}

// Error converts any Go error into the standardized `{"message": ...}` response.
//
// # Security
//
// Unexpected errors are logged with their full cause server-side and surfaced
// to the client as a generic failure. 5xx AppErrors log their hidden cause
// for the same reason.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, messageEnvelope{Message: appError.Message})
}
