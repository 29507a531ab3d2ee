package store

import (
	"github.com/shopspring/decimal"
)

// CartItem is a product line inside a cart or an order. Price, stock and
// shipping cost are captured at the time the product is added.
type CartItem struct {
	Product
	Quantity int
}

// LineTotal returns price multiplied by quantity for this line.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// LineShipping returns shipping cost multiplied by quantity for this line.
func (ci CartItem) LineShipping() decimal.Decimal {
	return ci.ShippingCost.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart is the mutable shopping cart aggregate. Quantity never exceeds the
// captured stock of the product; attempts to go above it are ignored rather
// than reported, matching the storefront behavior of a disabled add button.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{items: make([]CartItem, 0)}
}

// Add puts one unit of the product into the cart. If the product is already
// present its quantity grows by one, capped at the product stock. It returns
// false when nothing was added (no stock left).
func (c *Cart) Add(p Product) bool {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			if c.items[i].Quantity >= c.items[i].Stock {
				return false
			}
			c.items[i].Quantity++
			return true
		}
	}
	if p.Stock <= 0 {
		return false
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
	return true
}

// AdjustQuantity changes the quantity of a line by delta. A resulting
// quantity of zero or less removes the line; a result above the captured
// stock leaves the line unchanged. Unknown product ids are ignored.
func (c *Cart) AdjustQuantity(productID string, delta int) {
	for i := range c.items {
		if c.items[i].ID != productID {
			continue
		}
		next := c.items[i].Quantity + delta
		if next <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
		if next > c.items[i].Stock {
			return
		}
		c.items[i].Quantity = next
		return
	}
}

// Remove deletes a line from the cart regardless of quantity.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// ItemTotal returns the sum of price multiplied by quantity over all lines.
func (c *Cart) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ShippingTotal returns the sum of shipping cost multiplied by quantity
// over all lines.
func (c *Cart) ShippingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineShipping())
	}
	return total
}

// GrandTotal returns item total plus shipping total.
func (c *Cart) GrandTotal() decimal.Decimal {
	return c.ItemTotal().Add(c.ShippingTotal())
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	snapshot := make([]CartItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}
