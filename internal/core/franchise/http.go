// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package franchise

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fornello/internal/platform/middleware"
	requestutil "github.com/taibuivan/fornello/internal/platform/request"
	"github.com/taibuivan/fornello/internal/platform/respond"
	"github.com/taibuivan/fornello/internal/platform/sec"
	"github.com/taibuivan/fornello/internal/platform/validate"
	"github.com/taibuivan/fornello/pkg/pagination"
)

// Handler exposes the franchise hierarchy over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(router chi.Router) {
		router.Use(middleware.RequireAuth)

		router.Get("/{userID}", handler.listForUser)
		router.Post("/", handler.create)
		router.Delete("/{franchiseID}", handler.delete)
		router.Post("/{franchiseID}/store", handler.createStore)
		router.Delete("/{franchiseID}/store/{storeID}", handler.deleteStore)
	})

	return router
}

// # Request / Response Shapes

type createFranchiseRequest struct {
	Name   string  `json:"name"`
	Admins []admin `json:"admins"`
}

type admin struct {
	Email string `json:"email"`
}

type createStoreRequest struct {
	Name string `json:"name"`
}

type listResponse struct {
	Franchises []*Franchise `json:"franchises"`
	More       bool         `json:"more"`
}

// # Handlers

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	franchises, more, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Franchises: franchises, More: more})
}

// listForUser answers with the franchises the subject administers. A caller
// asking about someone else without admin rights gets an empty list, not a
// refusal — the response does not confirm whether the user exists.
func (handler *Handler) listForUser(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.IntParam(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if userID != identity.UserID && !identity.IsAdmin() {
		respond.OK(writer, []*Franchise{})
		return
	}

	franchises, err := handler.service.ListForUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, franchises)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	identity := requestutil.Identity(request)
	if err := sec.Check(identity, sec.GlobalAdmin(), MessageUnableCreateFranchise); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body createFranchiseRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFranchiseName, body.Name)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	adminEmails := make([]string, 0, len(body.Admins))
	for _, requested := range body.Admins {
		adminEmails = append(adminEmails, requested.Email)
	}

	franchise, err := handler.service.Create(request.Context(), body.Name, adminEmails)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, franchise)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	identity := requestutil.Identity(request)
	if err := sec.Check(identity, sec.GlobalAdmin(), MessageUnableDeleteFranchise); err != nil {
		respond.Error(writer, request, err)
		return
	}

	franchiseID, err := requestutil.IntParam(request, "franchiseID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), franchiseID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageFranchiseDeleted)
}

func (handler *Handler) createStore(writer http.ResponseWriter, request *http.Request) {
	franchiseID, err := requestutil.IntParam(request, "franchiseID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	identity := requestutil.Identity(request)
	if err := sec.Check(identity, sec.FranchiseAdminOf(franchiseID), MessageUnableCreateStore); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body createStoreRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldStoreName, body.Name)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	store, err := handler.service.CreateStore(request.Context(), franchiseID, body.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, store)
}

func (handler *Handler) deleteStore(writer http.ResponseWriter, request *http.Request) {
	franchiseID, err := requestutil.IntParam(request, "franchiseID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	storeID, err := requestutil.IntParam(request, "storeID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	identity := requestutil.Identity(request)
	if err := sec.Check(identity, sec.FranchiseAdminOf(franchiseID), MessageUnableDeleteStore); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteStore(request.Context(), franchiseID, storeID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageStoreDeleted)
}
