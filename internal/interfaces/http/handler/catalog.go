package handler

import (
	"github.com/gin-gonic/gin"

	appstore "github.com/nexera/storefront/internal/application/store"
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	BaseHandler
	catalog *appstore.CatalogService
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(catalog *appstore.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products", h.ListProducts)
	}
}

// ListProducts returns the catalog, flat by default or grouped by brand
// when ?grouped=true is passed
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if c.Query("grouped") == "true" {
		groups, err := h.catalog.ListGrouped(c.Request.Context())
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, groups)
		return
	}

	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}
