// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fornello/internal/core/order"
	"github.com/taibuivan/fornello/internal/platform/apperr"
)

/*
TestHTTPFactoryClient_Submit checks the request shape sent to the factory
and the token extraction on success.
*/
func TestHTTPFactoryClient_Submit(t *testing.T) {
	var received struct {
		path    string
		auth    string
		payload map[string]any
	}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		received.path = request.URL.Path
		received.auth = request.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(request.Body).Decode(&received.payload))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"jwt":"factory.signed.token"}`))
	}))
	defer server.Close()

	client := order.NewHTTPFactoryClient(server.URL, "test-api-key")
	diner := order.Diner{ID: 200, Name: "pizza diner", Email: "d@jwt.com"}
	placed := &order.Order{ID: 1, FranchiseID: 1, StoreID: 1,
		Items: []order.Item{{MenuID: 1, Description: "Veggie", Price: 0.05}}}

	token, err := client.Submit(context.Background(), diner, placed)
	require.NoError(t, err)
	assert.Equal(t, "factory.signed.token", token)

	assert.Equal(t, "/api/order", received.path)
	assert.Equal(t, "Bearer test-api-key", received.auth)

	sentDiner, ok := received.payload["diner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(200), sentDiner["id"])
	assert.Equal(t, "d@jwt.com", sentDiner["email"])
	assert.Contains(t, received.payload, "order")
}

/*
TestHTTPFactoryClient_Failures checks the uniform upstream error on a
rejection and on an unreachable factory.
*/
func TestHTTPFactoryClient_Failures(t *testing.T) {
	t.Run("rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message":"ovens are cold"}`))
		}))
		defer server.Close()

		client := order.NewHTTPFactoryClient(server.URL, "")
		_, err := client.Submit(context.Background(), order.Diner{ID: 1}, &order.Order{})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "failed to fulfill order at factory", ae.Message)
		assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := order.NewHTTPFactoryClient("http://127.0.0.1:1", "")
		_, err := client.Submit(context.Background(), order.Diner{ID: 1}, &order.Order{})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "failed to fulfill order at factory", ae.Message)
	})
}
