package store

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexera/storefront/internal/domain/shared"
	"github.com/nexera/storefront/internal/domain/shared/valueobject"
)

// Order is a placed order. Once created the customer fields, items and
// totals never change; only the sync and summary state is patched later.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Items         []CartItem
	TotalPrice    decimal.Decimal
	TotalShipping decimal.Decimal
	Date          time.Time
	AISummary     string
	IsLoadingAI   bool
	Synced        bool
}

// NewOrder builds an order from cart lines and customer details. Totals are
// derived from the lines so that TotalPrice always equals TotalShipping plus
// the sum of price times quantity.
func NewOrder(items []CartItem, customerName, customerPhone string) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "customer name cannot be empty")
	}
	if strings.TrimSpace(customerPhone) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "customer phone cannot be empty")
	}

	lines := make([]CartItem, len(items))
	copy(lines, items)

	itemTotal := decimal.Zero
	shippingTotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_ORDER", "order line quantity must be positive")
		}
		itemTotal = itemTotal.Add(line.LineTotal())
		shippingTotal = shippingTotal.Add(line.LineShipping())
	}

	return &Order{
		ID:            uuid.New().String(),
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: strings.TrimSpace(customerPhone),
		Items:         lines,
		TotalPrice:    itemTotal.Add(shippingTotal),
		TotalShipping: shippingTotal,
		Date:          time.Now(),
		IsLoadingAI:   true,
		Synced:        false,
	}, nil
}

// Total returns the grand total as THB money.
func (o *Order) Total() valueobject.Money {
	return valueobject.NewMoneyTHB(o.TotalPrice)
}

// MarkSynced records that the order reached the remote spreadsheet.
func (o *Order) MarkSynced() {
	o.Synced = true
}

// ApplySummary stores the generated thank-you note and clears the pending
// flag. An empty text still clears the flag but keeps the summary untouched.
func (o *Order) ApplySummary(text string) {
	if text != "" {
		o.AISummary = text
	}
	o.IsLoadingAI = false
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	dup := *o
	dup.Items = make([]CartItem, len(o.Items))
	copy(dup.Items, o.Items)
	return &dup
}

// MergeOrders combines locally known orders with orders fetched from the
// remote spreadsheet, keyed by order id. When both sides carry the same id
// the remote version wins; orders only known locally survive the merge.
// The result is sorted newest first.
func MergeOrders(local, remote []*Order) []*Order {
	byID := make(map[string]*Order, len(local)+len(remote))
	seen := make([]string, 0, len(local)+len(remote))

	for _, o := range local {
		if _, ok := byID[o.ID]; !ok {
			seen = append(seen, o.ID)
		}
		byID[o.ID] = o
	}
	for _, o := range remote {
		if _, ok := byID[o.ID]; !ok {
			seen = append(seen, o.ID)
		}
		byID[o.ID] = o
	}

	merged := make([]*Order, 0, len(seen))
	for _, id := range seen {
		merged = append(merged, byID[id])
	}
	SortByDateDesc(merged)
	return merged
}

// SortByDateDesc orders the slice newest first. The sort is stable so that
// orders carrying the same timestamp keep their relative position.
func SortByDateDesc(orders []*Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
}
