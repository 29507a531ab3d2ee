package store

import (
	"context"
	"sync"

	"github.com/nexera/storefront/internal/domain/shared"
	"github.com/nexera/storefront/internal/domain/store"
)

// CartService exposes the single shopping cart of the storefront. The cart
// lives in memory only; it is intentionally not persisted.
type CartService struct {
	mu       sync.Mutex
	cart     *store.Cart
	products store.ProductRepository
}

// NewCartService creates the service with an empty cart.
func NewCartService(products store.ProductRepository) *CartService {
	return &CartService{
		cart:     store.NewCart(),
		products: products,
	}
}

// AddItem puts one unit of the product into the cart. Adding a product with
// no remaining stock is silently ignored; only an unknown product id is an
// error.
func (s *CartService) AddItem(ctx context.Context, productID string) (CartResponse, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return CartResponse{}, err
	}
	if product == nil {
		return CartResponse{}, shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(*product)
	return toCartResponse(s.cart), nil
}

// UpdateQuantity adjusts a cart line by delta, removing it at zero.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, delta int) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustQuantity(productID, delta)
	return toCartResponse(s.cart)
}

// RemoveItem deletes a cart line.
func (s *CartService) RemoveItem(ctx context.Context, productID string) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	return toCartResponse(s.cart)
}

// Get returns the current cart.
func (s *CartService) Get(ctx context.Context) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toCartResponse(s.cart)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Snapshot returns a copy of the cart lines for order placement.
func (s *CartService) Snapshot(ctx context.Context) []store.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}
