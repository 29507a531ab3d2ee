package store

import (
	"time"

	"github.com/nexera/storefront/internal/domain/store"
)

// ProductResponse is the catalog product as served over HTTP.
type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ShippingCost float64 `json:"shippingCost"`
	ImageURL     string  `json:"imageUrl"`
}

// BrandGroupResponse is a catalog section for one brand.
type BrandGroupResponse struct {
	Brand    string            `json:"brand"`
	Products []ProductResponse `json:"products"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ProductResponse
	Quantity int `json:"quantity"`
}

// CartResponse is the whole cart with derived totals.
type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	Count         int                `json:"count"`
	ItemTotal     float64            `json:"itemTotal"`
	ShippingTotal float64            `json:"shippingTotal"`
	GrandTotal    float64            `json:"grandTotal"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
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

// OrderResponse is a placed order as served over HTTP. The field names
// mirror the persisted document so clients and the spreadsheet see the
// same shape.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	Items         []OrderItemResponse `json:"items"`
	TotalPrice    float64             `json:"totalPrice"`
	TotalShipping float64             `json:"totalShipping"`
	Date          string              `json:"date"`
	AISummary     string              `json:"aiSummary,omitempty"`
	IsLoadingAI   bool                `json:"isLoadingAi"`
	Synced        bool                `json:"synced"`
}

// SettingsResponse is the customer-changeable configuration.
type SettingsResponse struct {
	ScriptURL string `json:"scriptUrl"`
}

func toProductResponse(p store.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Price:        p.Price.InexactFloat64(),
		Stock:        p.Stock,
		ShippingCost: p.ShippingCost.InexactFloat64(),
		ImageURL:     p.ImageURL,
	}
}

func toCartResponse(cart *store.Cart) CartResponse {
	items := cart.Items()
	lines := make([]CartItemResponse, len(items))
	for i, item := range items {
		lines[i] = CartItemResponse{
			ProductResponse: toProductResponse(item.Product),
			Quantity:        item.Quantity,
		}
	}
	return CartResponse{
		Items:         lines,
		Count:         cart.Count(),
		ItemTotal:     cart.ItemTotal().InexactFloat64(),
		ShippingTotal: cart.ShippingTotal().InexactFloat64(),
		GrandTotal:    cart.GrandTotal().InexactFloat64(),
	}
}

// ToOrderResponse converts a domain order for HTTP clients.
func ToOrderResponse(o store.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, line := range o.Items {
		items[i] = OrderItemResponse{
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
	return OrderResponse{
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

// ToOrderResponses converts a list of orders.
func ToOrderResponses(orders []store.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = ToOrderResponse(o)
	}
	return result
}
