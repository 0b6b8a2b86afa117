// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fornello/internal/core/order"
	"github.com/taibuivan/fornello/internal/platform/apperr"
	"github.com/taibuivan/fornello/internal/platform/ctxutil"
	"github.com/taibuivan/fornello/internal/platform/sec"
)

// # Test Doubles

// fakeRepository keeps menu and orders in memory. CreateOrder honors the
// transactional contract: the order is only retained if submit succeeds.
type fakeRepository struct {
	nextMenuID  int64
	nextOrderID int64
	menu        []order.MenuItem
	orders      map[int64][]*order.Order
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextMenuID:  1,
		nextOrderID: 1,
		menu:        []order.MenuItem{},
		orders:      make(map[int64][]*order.Order),
	}
}

func (repo *fakeRepository) Menu(_ context.Context) ([]order.MenuItem, error) {
	return repo.menu, nil
}

func (repo *fakeRepository) AddMenuItem(_ context.Context, item *order.MenuItem) error {
	item.ID = repo.nextMenuID
	repo.nextMenuID++
	repo.menu = append(repo.menu, *item)
	return nil
}

func (repo *fakeRepository) OrdersForUser(_ context.Context, userID int64, limit, offset int) ([]*order.Order, bool, error) {
	history := repo.orders[userID]
	if offset >= len(history) {
		return []*order.Order{}, false, nil
	}
	history = history[offset:]
	more := len(history) > limit
	if more {
		history = history[:limit]
	}
	return history, more, nil
}

func (repo *fakeRepository) CreateOrder(_ context.Context, placed *order.Order, submit func(*order.Order) (string, error)) error {
	placed.ID = repo.nextOrderID
	placed.Date = time.Now()
	for index := range placed.Items {
		placed.Items[index].ID = int64(index + 1)
	}

	if _, err := submit(placed); err != nil {
		// Rollback: the order never existed.
		placed.ID = 0
		return err
	}

	repo.nextOrderID++
	repo.orders[placed.UserID] = append(repo.orders[placed.UserID], placed)
	return nil
}

// fakeFactory is the fulfillment factory double.
type fakeFactory struct {
	jwt  string
	fail bool
}

func (factory *fakeFactory) Submit(_ context.Context, _ order.Diner, _ *order.Order) (string, error) {
	if factory.fail {
		return "", apperr.Upstream("failed to fulfill order at factory", errors.New("factory unreachable"))
	}
	return factory.jwt, nil
}

// # Harness

func identityInjector(identity *sec.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if identity != nil {
				request = request.WithContext(ctxutil.WithIdentity(request.Context(), identity))
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func newTestRouter(identity *sec.Identity, factory *fakeFactory) (http.Handler, *fakeRepository) {
	repo := newFakeRepository()
	handler := order.NewHandler(order.NewService(repo, factory))

	router := chi.NewRouter()
	router.Use(identityInjector(identity))
	router.Mount("/order", handler.Routes())
	return router, repo
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
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

func adminCaller() *sec.Identity {
	return &sec.Identity{UserID: 100, Name: "admin", Email: "a@jwt.com",
		Roles: []sec.RoleGrant{{Role: sec.RoleAdmin}}}
}

func dinerCaller() *sec.Identity {
	return &sec.Identity{UserID: 200, Name: "pizza diner", Email: "d@jwt.com",
		Roles: []sec.RoleGrant{{Role: sec.RoleDiner}}}
}

// # Tests

/*
TestMenu_Public checks the unauthenticated catalog read.
*/
func TestMenu_Public(t *testing.T) {
	router, repo := newTestRouter(nil, &fakeFactory{jwt: "factory.jwt.token"})

	recorder := doJSON(t, router, http.MethodGet, "/order/menu", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	require.NoError(t, repo.AddMenuItem(context.Background(), &order.MenuItem{
		Title: "Veggie", Description: "A garden of delight", Price: 0.0038, Image: "pizza1.png",
	}))

	recorder = doJSON(t, router, http.MethodGet, "/order/menu", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var menu []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &menu))
	require.Len(t, menu, 1)
	assert.Equal(t, "Veggie", menu[0]["title"])
	assert.Equal(t, 0.0038, menu[0]["price"])
}

/*
TestAddMenuItem checks the admin-only gate with its fixed denial and that a
successful insert echoes the whole menu.
*/
func TestAddMenuItem(t *testing.T) {
	t.Run("admin_success", func(t *testing.T) {
		router, _ := newTestRouter(adminCaller(), &fakeFactory{jwt: "factory.jwt.token"})

		recorder := doJSON(t, router, http.MethodPut, "/order/menu",
			`{"title":"Student","description":"No topping, no sauce","price":0.0001,"image":"pizza9.png"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var menu []map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &menu))
		require.Len(t, menu, 1)
		assert.Equal(t, float64(1), menu[0]["id"])
		assert.Equal(t, "Student", menu[0]["title"])
	})

	t.Run("diner_forbidden", func(t *testing.T) {
		router, _ := newTestRouter(dinerCaller(), &fakeFactory{jwt: "factory.jwt.token"})

		recorder := doJSON(t, router, http.MethodPut, "/order/menu",
			`{"title":"Student","price":0.0001}`)
		require.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "unable to add menu item", decodeBody(t, recorder)["message"])
	})

	t.Run("anonymous_unauthorized", func(t *testing.T) {
		router, _ := newTestRouter(nil, &fakeFactory{jwt: "factory.jwt.token"})

		recorder := doJSON(t, router, http.MethodPut, "/order/menu",
			`{"title":"Student","price":0.0001}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

/*
TestCreateOrder_Success checks the accepted order shape: assigned IDs, the
caller bound as the owner, and the factory token alongside.
*/
func TestCreateOrder_Success(t *testing.T) {
	router, repo := newTestRouter(dinerCaller(), &fakeFactory{jwt: "factory.jwt.token"})

	recorder := doJSON(t, router, http.MethodPost, "/order",
		`{"franchiseId":1,"storeId":1,"items":[{"menuId":1,"description":"Veggie","price":0.05}]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeBody(t, recorder)
	assert.Equal(t, "factory.jwt.token", payload["jwt"])

	placed, ok := payload["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), placed["id"])
	assert.Equal(t, float64(1), placed["franchiseId"])
	assert.Equal(t, float64(1), placed["storeId"])

	items, ok := placed["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	// The owner is taken from the identity, never from the body.
	require.Len(t, repo.orders[200], 1)
	assert.Equal(t, int64(200), repo.orders[200][0].UserID)
}

/*
TestCreateOrder_FactoryFailure checks that a factory refusal surfaces as a
500 and that the order does not survive it.
*/
func TestCreateOrder_FactoryFailure(t *testing.T) {
	router, repo := newTestRouter(dinerCaller(), &fakeFactory{fail: true})

	recorder := doJSON(t, router, http.MethodPost, "/order",
		`{"franchiseId":1,"storeId":1,"items":[{"menuId":1,"description":"Veggie","price":0.05}]}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "failed to fulfill order at factory", decodeBody(t, recorder)["message"])
	assert.Empty(t, repo.orders[200])
}

/*
TestCreateOrder_Validation covers the malformed-order rejections.
*/
func TestCreateOrder_Validation(t *testing.T) {
	router, _ := newTestRouter(dinerCaller(), &fakeFactory{jwt: "factory.jwt.token"})

	bodies := []string{
		`{"storeId":1,"items":[{"menuId":1,"description":"Veggie","price":0.05}]}`,
		`{"franchiseId":1,"items":[{"menuId":1,"description":"Veggie","price":0.05}]}`,
		`{"franchiseId":1,"storeId":1,"items":[]}`,
	}

	for _, body := range bodies {
		recorder := doJSON(t, router, http.MethodPost, "/order", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	}
}

/*
TestOrderHistory checks the paged history shell and that callers only ever
see their own orders.
*/
func TestOrderHistory(t *testing.T) {
	router, repo := newTestRouter(dinerCaller(), &fakeFactory{jwt: "factory.jwt.token"})

	// Someone else's order must never appear.
	repo.orders[999] = []*order.Order{{ID: 77, UserID: 999}}

	recorder := doJSON(t, router, http.MethodGet, "/order", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeBody(t, recorder)
	assert.Equal(t, float64(200), payload["dinerId"])
	assert.Equal(t, float64(1), payload["page"])
	orders, ok := payload["orders"].([]any)
	require.True(t, ok)
	assert.Empty(t, orders)

	recorder = doJSON(t, router, http.MethodPost, "/order",
		`{"franchiseId":1,"storeId":1,"items":[{"menuId":1,"description":"Veggie","price":0.05}]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/order", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	payload = decodeBody(t, recorder)
	orders, ok = payload["orders"].([]any)
	require.True(t, ok)
	assert.Len(t, orders, 1)
}

/*
TestOrderHistory_Anonymous checks the guard on the history route.
*/
func TestOrderHistory_Anonymous(t *testing.T) {
	router, _ := newTestRouter(nil, &fakeFactory{jwt: "factory.jwt.token"})

	recorder := doJSON(t, router, http.MethodGet, "/order", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
