package handler

import (
	"github.com/diskmensagem/backend/internal/application/billing"
	"github.com/diskmensagem/backend/internal/application/catalog"
	"github.com/diskmensagem/backend/internal/application/ordering"
	"github.com/diskmensagem/backend/internal/application/settings"
	"github.com/diskmensagem/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorefrontHandler handles the public, unauthenticated storefront API.
// Customers browse the catalog, place orders and pull PIX charges here.
type StorefrontHandler struct {
	BaseHandler
	orderService    *ordering.OrderService
	paymentService  *billing.PaymentService
	catalogService  *catalog.CatalogService
	settingsService *settings.SettingsService
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(
	orderService *ordering.OrderService,
	paymentService *billing.PaymentService,
	catalogService *catalog.CatalogService,
	settingsService *settings.SettingsService,
	logger *zap.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		BaseHandler:     NewBaseHandler(logger),
		orderService:    orderService,
		paymentService:  paymentService,
		catalogService:  catalogService,
		settingsService: settingsService,
	}
}

// Register registers public storefront routes
func (h *StorefrontHandler) Register(api *gin.RouterGroup) {
	api.GET("/config", h.GetConfig)
	api.GET("/categories", h.ListCategories)
	api.GET("/messages", h.ListMessages)

	orders := api.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:id/status", h.GetOrderStatus)
		orders.POST("/:id/pix", h.GeneratePayment)
		orders.GET("/:id/pix", h.GetPayment)
	}
}

// GetConfig returns the public storefront configuration
func (h *StorefrontHandler) GetConfig(c *gin.Context) {
	cfg, err := h.settingsService.PublicConfig(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cfg)
}

// ListCategories returns active categories for the storefront
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListActiveCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// ListMessages returns active messages, optionally filtered by category or search
func (h *StorefrontHandler) ListMessages(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, dto.ErrCodeValidation, "Invalid category_id parameter")
			return
		}
		categoryID = &id
	}

	messages, err := h.catalogService.ListPublicMessages(c.Request.Context(), categoryID, c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, messages)
}

// CreateOrder places a new commissioned message order
func (h *StorefrontHandler) CreateOrder(c *gin.Context) {
	var req ordering.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// GetOrderStatus lets a customer poll their order.
// The full order is returned; the customer already knows everything
// in it since they typed it in.
func (h *StorefrontHandler) GetOrderStatus(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// GeneratePayment creates or returns the PIX charge for an order
func (h *StorefrontHandler) GeneratePayment(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.Generate(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// GetPayment returns the existing PIX charge for an order
func (h *StorefrontHandler) GetPayment(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}
