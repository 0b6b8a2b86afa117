// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

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

// Handler exposes the menu and order intake over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/menu", handler.menu)

	router.Group(func(router chi.Router) {
		router.Use(middleware.RequireAuth)

		router.Put("/menu", handler.addMenuItem)
		router.Get("/", handler.list)
		router.Post("/", handler.create)
	})

	return router
}

// # Request / Response Shapes

type addMenuItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

type createOrderRequest struct {
	FranchiseID int64  `json:"franchiseId"`
	StoreID     int64  `json:"storeId"`
	Items       []Item `json:"items"`
}

type historyResponse struct {
	DinerID int64    `json:"dinerId"`
	Orders  []*Order `json:"orders"`
	Page    int      `json:"page"`
}

type createOrderResponse struct {
	Order *Order `json:"order"`
	JWT   string `json:"jwt"`
}

// # Handlers

func (handler *Handler) menu(writer http.ResponseWriter, request *http.Request) {
	menu, err := handler.service.Menu(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, menu)
}

func (handler *Handler) addMenuItem(writer http.ResponseWriter, request *http.Request) {
	identity := requestutil.Identity(request)
	if err := sec.Check(identity, sec.GlobalAdmin(), MessageUnableAddMenuItem); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body addMenuItemRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("title", body.Title).
		Positive("price", body.Price)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item := &MenuItem{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		Image:       body.Image,
	}

	menu, err := handler.service.AddMenuItem(request.Context(), item)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, menu)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	orders, _, err := handler.service.OrdersForUser(request.Context(), identity.UserID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, historyResponse{
		DinerID: identity.UserID,
		Orders:  orders,
		Page:    params.Page,
	})
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body createOrderRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("franchiseId", float64(body.FranchiseID)).
		Positive("storeId", float64(body.StoreID)).
		NotEmpty("items", len(body.Items))
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	placed := &Order{
		FranchiseID: body.FranchiseID,
		StoreID:     body.StoreID,
		Items:       body.Items,
	}

	factoryToken, err := handler.service.Create(request.Context(), identity, placed)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, createOrderResponse{Order: placed, JWT: factoryToken})
}
