package catalog

import (
	"context"

	"github.com/nexera/storefront/internal/domain/store"
)

// InMemoryProductRepository serves the built-in catalog. The catalog is
// fixed for the lifetime of the process so no locking is needed.
type InMemoryProductRepository struct {
	products []store.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a repository over the given
// products, keeping their order.
func NewInMemoryProductRepository(products []store.Product) *InMemoryProductRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &InMemoryProductRepository{products: products, byID: byID}
}

// NewDefaultProductRepository creates a repository over the built-in
// catalog.
func NewDefaultProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepository(DefaultProducts())
}

// List returns all products in catalog order.
func (r *InMemoryProductRepository) List(ctx context.Context) ([]store.Product, error) {
	result := make([]store.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

// FindByID returns the product with the given id, or nil when unknown.
func (r *InMemoryProductRepository) FindByID(ctx context.Context, id string) (*store.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	dup := r.products[i]
	return &dup, nil
}
