// Package client is the storefront's HTTP facade over the backend REST API.
// Every call degrades to a locally-safe default on failure; callers never
// see a transport error, only the ok=false signal.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"yellow-mart/internal/models"
)

type APIClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a facade rooted at baseURL (e.g. "http://localhost:5000/api").
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchProducts returns the remote catalog. ok is false on any failure.
func (c *APIClient) FetchProducts(ctx context.Context) ([]models.Product, bool) {
	var products []models.Product
	if !c.getJSON(ctx, "/products", &products) {
		return nil, false
	}
	return products, true
}

// SeedProducts pushes the fixture catalog and returns the persisted set.
func (c *APIClient) SeedProducts(ctx context.Context, products []models.Product) ([]models.Product, bool) {
	var seeded []models.Product
	if !c.postJSON(ctx, "/products/seed", products, &seeded) {
		return nil, false
	}
	return seeded, true
}

// CreateOrder submits a client-materialized order. The backend stores it as
// sent; ok is false when the write never landed.
func (c *APIClient) CreateOrder(ctx context.Context, order models.Order) bool {
	return c.postJSON(ctx, "/orders", order, nil)
}

// FetchOrders returns the global order history, newest first.
func (c *APIClient) FetchOrders(ctx context.Context) ([]models.Order, bool) {
	var orders []models.Order
	if !c.getJSON(ctx, "/orders", &orders) {
		return nil, false
	}
	return orders, true
}

// FetchOrdersByCustomer returns one customer's history, newest first.
func (c *APIClient) FetchOrdersByCustomer(ctx context.Context, email string) ([]models.Order, bool) {
	var orders []models.Order
	if !c.getJSON(ctx, "/orders/user/"+email, &orders) {
		return nil, false
	}
	return orders, true
}

func (c *APIClient) getJSON(ctx context.Context, path string, out interface{}) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.logger.Warn("Failed to build request", zap.String("path", path), zap.Error(err))
		return false
	}
	return c.do(req, out)
}

func (c *APIClient) postJSON(ctx context.Context, path string, body, out interface{}) bool {
	data, err := json.Marshal(body)
	if err != nil {
		c.logger.Warn("Failed to encode request", zap.String("path", path), zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("Failed to build request", zap.String("path", path), zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out interface{}) bool {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Backend unreachable, degrading locally",
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Backend returned non-success status",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return false
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return true
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn(fmt.Sprintf("Failed to decode response from %s", req.URL.Path), zap.Error(err))
		return false
	}
	return true
}
