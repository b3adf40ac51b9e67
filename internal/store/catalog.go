package store

import (
	"context"

	"yellow-mart/internal/models"
)

// LoadCatalog resolves the product list. Remote first; an empty remote
// catalog is seeded with the fixture set (the single remote write in this
// path); any degradation falls back to the fixtures without persisting them.
// The fallback is silent to the viewer but logged.
func (s *Session) LoadCatalog(ctx context.Context) []models.Product {
	products, ok := s.remote.FetchProducts(ctx)
	switch {
	case !ok:
		s.logger.Warn("Backend disconnected, using fallback catalog")
		products = FallbackProducts()
	case len(products) == 0:
		seeded, ok := s.remote.SeedProducts(ctx, FallbackProducts())
		if !ok || len(seeded) == 0 {
			s.logger.Warn("Catalog seeding failed, using fallback catalog")
			seeded = FallbackProducts()
		}
		products = seeded
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return append([]models.Product(nil), products...)
}

// Products returns the catalog loaded by LoadCatalog.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}
