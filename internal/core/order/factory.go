// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/taibuivan/fornello/internal/platform/apperr"
)

// Diner identifies the ordering user to the fulfillment factory.
type Diner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FactoryClient submits confirmed orders to the fulfillment factory and
// returns the factory's signed fulfillment token.
type FactoryClient interface {
	Submit(context context.Context, diner Diner, order *Order) (string, error)
}

const factoryRequestTimeout = 10 * time.Second

// HTTPFactoryClient talks to the fulfillment factory over its JSON API.
type HTTPFactoryClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPFactoryClient(baseURL, apiKey string) *HTTPFactoryClient {
	return &HTTPFactoryClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: factoryRequestTimeout},
	}
}

type factoryRequest struct {
	Diner Diner  `json:"diner"`
	Order *Order `json:"order"`
}

type factoryResponse struct {
	JWT     string `json:"jwt"`
	Message string `json:"message"`
}

/*
Submit posts the order to the factory and returns its fulfillment token.

Description: Any failure (transport, non-2xx status, unparseable body) is
reported as an upstream error with the fixed client-facing message; the
caller decides whether the order survives.

Parameters:
  - context: context.Context
  - diner: Diner
  - order: *Order

Returns:
  - string: Factory-signed fulfillment token
  - error: apperr.Upstream on any factory failure
*/
func (factory *HTTPFactoryClient) Submit(context context.Context, diner Diner, order *Order) (string, error) {
	payload, err := json.Marshal(factoryRequest{Diner: diner, Order: order})
	if err != nil {
		return "", apperr.Upstream("failed to fulfill order at factory", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost,
		factory.baseURL+"/api/order", bytes.NewReader(payload))
	if err != nil {
		return "", apperr.Upstream("failed to fulfill order at factory", err)
	}
	request.Header.Set("Content-Type", "application/json")
	if factory.apiKey != "" {
		request.Header.Set("Authorization", "Bearer "+factory.apiKey)
	}

	response, err := factory.client.Do(request)
	if err != nil {
		return "", apperr.Upstream("failed to fulfill order at factory", err)
	}
	defer response.Body.Close()

	var body factoryResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return "", apperr.Upstream("failed to fulfill order at factory", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", apperr.Upstream("failed to fulfill order at factory",
			fmt.Errorf("factory_rejected_order: status %d: %s", response.StatusCode, body.Message))
	}

	return body.JWT, nil
}
