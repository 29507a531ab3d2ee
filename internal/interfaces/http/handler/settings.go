package handler

import (
	"github.com/gin-gonic/gin"

	appstore "github.com/nexera/storefront/internal/application/store"
)

// UpdateSettingsRequest is the payload for changing the spreadsheet
// endpoint. An empty scriptUrl disables cloud sync.
type UpdateSettingsRequest struct {
	ScriptURL string `json:"scriptUrl"`
}

// SettingsHandler serves the customer-changeable configuration
type SettingsHandler struct {
	BaseHandler
	settings *appstore.SettingsService
}

// NewSettingsHandler creates a settings handler
func NewSettingsHandler(settings *appstore.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
	}
}

// GetSettings returns the persisted configuration
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cfg)
}

// UpdateSettings stores a new spreadsheet endpoint and kicks off a
// background reconcile when one is set
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid settings payload")
		return
	}

	cfg, err := h.settings.Update(c.Request.Context(), req.ScriptURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cfg)
}
