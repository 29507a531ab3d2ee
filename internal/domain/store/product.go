package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nexera/storefront/internal/domain/shared"
)

// Product is a catalog entry. Products are immutable once loaded; cart and
// order items carry a copy of the product fields they were created from.
type Product struct {
	ID           string
	Name         string
	Brand        string
	Category     string
	Price        decimal.Decimal
	Stock        int
	ShippingCost decimal.Decimal
	ImageURL     string
}

// NewProduct creates a validated catalog product.
func NewProduct(id, name, brand, category string, price decimal.Decimal, stock int, shippingCost decimal.Decimal, imageURL string) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "product id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "product price cannot be negative")
	}
	if shippingCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "product shipping cost cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "product stock cannot be negative")
	}

	return &Product{
		ID:           id,
		Name:         name,
		Brand:        brand,
		Category:     category,
		Price:        price,
		Stock:        stock,
		ShippingCost: shippingCost,
		ImageURL:     imageURL,
	}, nil
}

// InStock reports whether at least one unit can still be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
