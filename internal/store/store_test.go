package store_test

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"yellow-mart/internal/models"
	"yellow-mart/internal/store"
)

// fakeRemote is a controllable in-memory Remote for session tests.
type fakeRemote struct {
	mu sync.Mutex

	products []models.Product
	fetchOK  bool

	seedOK    bool
	seedCalls int

	createOK bool
	created  []models.Order

	orders     []models.Order
	ordersOK   bool
	byCustomer map[string][]models.Order
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		fetchOK:    true,
		seedOK:     true,
		createOK:   true,
		ordersOK:   true,
		byCustomer: map[string][]models.Order{},
	}
}

func (f *fakeRemote) FetchProducts(ctx context.Context) ([]models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.fetchOK {
		return nil, false
	}
	return f.products, true
}

func (f *fakeRemote) SeedProducts(ctx context.Context, products []models.Product) ([]models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seedCalls++
	if !f.seedOK {
		return nil, false
	}
	f.products = products
	return products, true
}

func (f *fakeRemote) CreateOrder(ctx context.Context, order models.Order) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.createOK {
		return false
	}
	f.created = append(f.created, order)
	return true
}

func (f *fakeRemote) FetchOrders(ctx context.Context) ([]models.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ordersOK {
		return nil, false
	}
	return f.orders, true
}

func (f *fakeRemote) FetchOrdersByCustomer(ctx context.Context, email string) ([]models.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ordersOK {
		return nil, false
	}
	return f.byCustomer[email], true
}

func (f *fakeRemote) createdOrders() []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order(nil), f.created...)
}

func (f *fakeRemote) setOrdersOK(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ordersOK = ok
}

func (f *fakeRemote) seedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seedCalls
}

type acceptAllVerifier struct{}

func (acceptAllVerifier) Verify(string) bool { return true }

func newTestSession(remote store.Remote) *store.Session {
	return store.New(remote, acceptAllVerifier{}, zap.NewNop())
}

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Electronics",
		Stock:    10,
	}
}
