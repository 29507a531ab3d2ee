package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDocument is the serialized form of an order. The same shape is used
// for local persistence and for the spreadsheet endpoint, so the field names
// and number types must stay stable across releases.
type OrderDocument struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	Items         []ItemDocument `json:"items"`
	TotalPrice    float64        `json:"totalPrice"`
	TotalShipping float64        `json:"totalShipping"`
	Date          string         `json:"date"`
	AISummary     string         `json:"aiSummary,omitempty"`
	IsLoadingAI   bool           `json:"isLoadingAi,omitempty"`
	Synced        bool           `json:"synced,omitempty"`
}

// ItemDocument is the serialized form of an order line.
type ItemDocument struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ShippingCost float64 `json:"shippingCost"`
	ImageURL     string  `json:"imageUrl"`
	Quantity     int     `json:"quantity"`
}

// ToDocument converts the order into its serialized form. Dates are written
// as RFC 3339 in UTC.
func (o *Order) ToDocument() OrderDocument {
	items := make([]ItemDocument, len(o.Items))
	for i, line := range o.Items {
		items[i] = ItemDocument{
			ID:           line.ID,
			Name:         line.Name,
			Brand:        line.Brand,
			Category:     line.Category,
			Price:        line.Price.InexactFloat64(),
			Stock:        line.Stock,
			ShippingCost: line.ShippingCost.InexactFloat64(),
			ImageURL:     line.ImageURL,
			Quantity:     line.Quantity,
		}
	}
	return OrderDocument{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		TotalPrice:    o.TotalPrice.InexactFloat64(),
		TotalShipping: o.TotalShipping.InexactFloat64(),
		Date:          o.Date.UTC().Format(time.RFC3339Nano),
		AISummary:     o.AISummary,
		IsLoadingAI:   o.IsLoadingAI,
		Synced:        o.Synced,
	}
}

// ToOrder converts the serialized form back into a domain order. An
// unparseable date degrades to the zero time instead of failing the load.
func (d OrderDocument) ToOrder() *Order {
	items := make([]CartItem, len(d.Items))
	for i, line := range d.Items {
		items[i] = CartItem{
			Product: Product{
				ID:           line.ID,
				Name:         line.Name,
				Brand:        line.Brand,
				Category:     line.Category,
				Price:        decimal.NewFromFloat(line.Price),
				Stock:        line.Stock,
				ShippingCost: decimal.NewFromFloat(line.ShippingCost),
				ImageURL:     line.ImageURL,
			},
			Quantity: line.Quantity,
		}
	}

	date, err := time.Parse(time.RFC3339Nano, d.Date)
	if err != nil {
		date = time.Time{}
	}

	return &Order{
		ID:            d.ID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Items:         items,
		TotalPrice:    decimal.NewFromFloat(d.TotalPrice),
		TotalShipping: decimal.NewFromFloat(d.TotalShipping),
		Date:          date,
		AISummary:     d.AISummary,
		IsLoadingAI:   d.IsLoadingAI,
		Synced:        d.Synced,
	}
}

// OrdersToDocuments converts a list of orders.
func OrdersToDocuments(orders []*Order) []OrderDocument {
	docs := make([]OrderDocument, len(orders))
	for i, o := range orders {
		docs[i] = o.ToDocument()
	}
	return docs
}

// DocumentsToOrders converts a list of serialized orders.
func DocumentsToOrders(docs []OrderDocument) []*Order {
	orders := make([]*Order, len(docs))
	for i, d := range docs {
		orders[i] = d.ToOrder()
	}
	return orders
}
