// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/middleware"
	requestutil "github.com/taibuivan/fornello/internal/platform/request"
	"github.com/taibuivan/fornello/internal/platform/respond"
	"github.com/taibuivan/fornello/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// This handler manages the credential lifecycle entry points: registration,
// login, and logout. It is strictly responsible for transport concerns
// (status codes, fixed messages, JSON shapes).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the authentication routes.
//
// # Endpoints
//   - POST   / : Registers a new account and returns {user, token}.
//   - PUT    / : Authenticates and returns {user, token}.
//   - DELETE / : Revokes the presented credential (requires auth).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/", handler.register)
	router.Put("/", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Delete("/", handler.logout)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// credentialResponse is the shared success shape for register and login.
type credentialResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

/*
register handles the creation of a new user account.

POST /auth

Description: Validates input, persists a new user with its default diner
grant, and issues a bearer credential.

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 200: {user, token}
  - 400: Fixed message when any field is missing
  - 409: Conflict when the email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.ValidationError(MessageMissingFields))
		return
	}

	// The incomplete-registration message is a fixed external contract,
	// whichever field is missing.
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.ErrWithMessage(MessageMissingFields); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, token, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, credentialResponse{User: user, Token: token})
}

/*
login authenticates an existing user.

PUT /auth

Description: Verifies credentials and issues a fresh bearer credential. The
user's current role grants ride along in the response body.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: {user, token}
  - 401: Uniform message on any credential failure
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, token, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, credentialResponse{User: user, Token: token})
}

/*
logout revokes the credential the request was authenticated with.

DELETE /auth

Description: Records the credential identifier on the denylist with
immediate effect. A repeated logout with the same token is rejected by the
guard (401) before reaching this handler, because the credential is already
revoked.

Response:
  - 200: {message:"logout successful"}
  - 401: Missing, malformed, or already-revoked credential
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), identity.CredentialID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageLogoutSuccessful)
}
