package store

import (
	"context"

	"github.com/nexera/storefront/internal/domain/store"
)

// CatalogService exposes the read-only product catalog.
type CatalogService struct {
	products store.ProductRepository
}

// NewCatalogService creates the service.
func NewCatalogService(products store.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns every catalog product in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]ProductResponse, len(products))
	for i, p := range products {
		result[i] = toProductResponse(p)
	}
	return result, nil
}

// ListGrouped returns the catalog grouped by brand, brands ordered by first
// appearance in the catalog.
func (s *CatalogService) ListGrouped(ctx context.Context) ([]BrandGroupResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]BrandGroupResponse, 0)
	for _, p := range products {
		i, ok := index[p.Brand]
		if !ok {
			i = len(groups)
			index[p.Brand] = i
			groups = append(groups, BrandGroupResponse{Brand: p.Brand})
		}
		groups[i].Products = append(groups[i].Products, toProductResponse(p))
	}
	return groups, nil
}
