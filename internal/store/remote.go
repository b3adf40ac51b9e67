package store

import (
	"context"

	"yellow-mart/internal/models"
)

// Remote is the sync facade the session talks to. Implementations never
// return errors: a false ok means the call degraded and the caller should
// fall back to local data. client.APIClient is the production implementation.
type Remote interface {
	FetchProducts(ctx context.Context) ([]models.Product, bool)
	SeedProducts(ctx context.Context, products []models.Product) ([]models.Product, bool)
	CreateOrder(ctx context.Context, order models.Order) bool
	FetchOrders(ctx context.Context) ([]models.Order, bool)
	FetchOrdersByCustomer(ctx context.Context, email string) ([]models.Order, bool)
}
