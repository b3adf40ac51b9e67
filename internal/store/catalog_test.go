package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yellow-mart/internal/models"
	"yellow-mart/internal/store"
)

func TestLoadCatalogUsesRemoteWhenNonEmpty(t *testing.T) {
	remote := newFakeRemote()
	remote.products = []models.Product{testProduct("x1", 999)}
	s := newTestSession(remote)

	products := s.LoadCatalog(context.Background())

	require.Len(t, products, 1)
	assert.Equal(t, "x1", products[0].ID)
	assert.Zero(t, remote.seedCount(), "no seed when the remote catalog has data")
	assert.Equal(t, products, s.Products())
}

func TestLoadCatalogSeedsWhenRemoteEmpty(t *testing.T) {
	remote := newFakeRemote()
	s := newTestSession(remote)

	products := s.LoadCatalog(context.Background())

	assert.Equal(t, 1, remote.seedCount(), "exactly one remote write when confirmed empty")
	assert.Equal(t, store.FallbackProducts(), products)
}

func TestLoadCatalogFallsBackSilentlyOnFetchFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.fetchOK = false
	s := newTestSession(remote)

	products := s.LoadCatalog(context.Background())

	assert.Equal(t, store.FallbackProducts(), products)
	assert.Zero(t, remote.seedCount(), "never seed when the remote state is unknown")
}

func TestLoadCatalogFallsBackWhenSeedDegrades(t *testing.T) {
	remote := newFakeRemote()
	remote.seedOK = false
	s := newTestSession(remote)

	products := s.LoadCatalog(context.Background())

	assert.Equal(t, 1, remote.seedCount())
	assert.Equal(t, store.FallbackProducts(), products)
}
