package handler

import (
	"github.com/diskmensagem/backend/internal/application/settings"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler handles admin settings endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settings.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *settings.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     NewBaseHandler(logger),
		settingsService: settingsService,
	}
}

// Register registers admin settings routes
func (h *SettingsHandler) Register(admin *gin.RouterGroup) {
	admin.GET("/settings", h.Get)
	admin.PUT("/settings", h.Update)
}

// Get returns the full business settings
func (h *SettingsHandler) Get(c *gin.Context) {
	result, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Update replaces the business settings wholesale
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
