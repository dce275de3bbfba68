package handler

import (
	"github.com/diskmensagem/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler handles admin catalog management endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *catalog.CatalogService
	importService  *catalog.ImportService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.CatalogService, importService *catalog.ImportService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogService: catalogService,
		importService:  importService,
	}
}

// Register registers admin catalog routes
func (h *CatalogHandler) Register(admin *gin.RouterGroup) {
	categories := admin.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	messages := admin.Group("/messages")
	{
		messages.GET("", h.ListMessages)
		messages.POST("", h.CreateMessage)
		messages.GET("/:id", h.GetMessage)
		messages.PUT("/:id", h.UpdateMessage)
		messages.DELETE("/:id", h.DeleteMessage)
		messages.POST("/import", h.Import)
	}
}

// ListCategories returns all categories, active or not
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// CreateCategory creates a new category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// UpdateCategory updates a category
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// DeleteCategory deletes an empty category
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMessages returns a paginated message list for the admin
func (h *CatalogHandler) ListMessages(c *gin.Context) {
	var filter catalog.MessageListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.catalogService.ListMessages(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CreateMessage creates a new catalog message
func (h *CatalogHandler) CreateMessage(c *gin.Context) {
	var req catalog.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	message, err := h.catalogService.CreateMessage(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, message)
}

// GetMessage returns a single message with its full body
func (h *CatalogHandler) GetMessage(c *gin.Context) {
	messageID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	message, err := h.catalogService.GetMessage(c.Request.Context(), messageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, message)
}

// UpdateMessage updates a catalog message
func (h *CatalogHandler) UpdateMessage(c *gin.Context) {
	messageID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalog.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	message, err := h.catalogService.UpdateMessage(c.Request.Context(), messageID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, message)
}

// DeleteMessage deletes a catalog message
func (h *CatalogHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteMessage(c.Request.Context(), messageID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Import bulk-imports categories and messages from a text archive
func (h *CatalogHandler) Import(c *gin.Context) {
	var req catalog.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.importService.Import(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
