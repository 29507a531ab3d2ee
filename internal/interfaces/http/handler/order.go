package handler

import (
	"github.com/gin-gonic/gin"

	appstore "github.com/nexera/storefront/internal/application/store"
)

// PlaceOrderRequest is the payload for placing an order from the current
// cart contents
type PlaceOrderRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required,phone"`
}

// OrderHandler serves order placement, history and cloud reconciliation
type OrderHandler struct {
	BaseHandler
	orders *appstore.OrderService
	cart   *appstore.CartService
}

// NewOrderHandler creates an order handler
func NewOrderHandler(orders *appstore.OrderService, cart *appstore.CartService) *OrderHandler {
	return &OrderHandler{orders: orders, cart: cart}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.PlaceOrder)
		orders.POST("/sync", h.Sync)
	}
}

// PlaceOrder creates an order from the cart. The cart is cleared only
// after the order is recorded, so a failed placement never loses it.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "customerName and a valid customerPhone are required")
		return
	}

	ctx := c.Request.Context()
	items := h.cart.Snapshot(ctx)

	placed, err := h.orders.Submit(ctx, items, req.CustomerName, req.CustomerPhone)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.cart.Clear(ctx)
	h.Created(c, appstore.ToOrderResponse(placed))
}

// ListOrders returns the order history, newest first
func (h *OrderHandler) ListOrders(c *gin.Context) {
	h.Success(c, appstore.ToOrderResponses(h.orders.List(c.Request.Context())))
}

// Sync pulls the full order list from the spreadsheet endpoint and merges
// it into the local history
func (h *OrderHandler) Sync(c *gin.Context) {
	merged, err := h.orders.Reconcile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appstore.ToOrderResponses(merged))
}
