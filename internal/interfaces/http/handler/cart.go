package handler

import (
	"github.com/gin-gonic/gin"

	appstore "github.com/nexera/storefront/internal/application/store"
)

// AddCartItemRequest is the payload for adding a product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateCartItemRequest is the payload for changing a line quantity
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CartHandler serves the shopping cart
type CartHandler struct {
	BaseHandler
	cart *appstore.CartService
}

// NewCartHandler creates a cart handler
func NewCartHandler(cart *appstore.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:productId", h.UpdateItem)
		cart.DELETE("/items/:productId", h.RemoveItem)
	}
}

// GetCart returns the current cart with totals
func (h *CartHandler) GetCart(c *gin.Context) {
	h.Success(c, h.cart.Get(c.Request.Context()))
}

// AddItem puts one unit of a product into the cart. Adding beyond the
// available stock is not an error; the cart simply stays unchanged.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "productId is required")
		return
	}

	cart, err := h.cart.AddItem(c.Request.Context(), req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateItem adjusts a line quantity by a signed delta
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "delta is required and must be a non-zero integer")
		return
	}

	h.Success(c, h.cart.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Delta))
}

// RemoveItem deletes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.Success(c, h.cart.RemoveItem(c.Request.Context(), c.Param("productId")))
}
