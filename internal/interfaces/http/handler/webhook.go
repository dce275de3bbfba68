package handler

import (
	"time"

	"github.com/diskmensagem/backend/internal/application/billing"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PixWebhookRequest is the payload the PSP posts on charge events
type PixWebhookRequest struct {
	EventID string `json:"event_id" binding:"max=100"`
	TxID    string `json:"txid" binding:"required,min=1,max=25"`
	Status  string `json:"status" binding:"required,oneof=confirmed failed"`
}

// WebhookHandler handles PSP payment callbacks
type WebhookHandler struct {
	BaseHandler
	paymentService *billing.PaymentService
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
	logger         *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(
	paymentService *billing.PaymentService,
	idempotency shared.IdempotencyStore,
	idempotencyTTL time.Duration,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:    NewBaseHandler(logger),
		paymentService: paymentService,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
		logger:         logger,
	}
}

// Register registers webhook routes. The group already carries the
// webhook token middleware.
func (h *WebhookHandler) Register(webhooks *gin.RouterGroup) {
	webhooks.POST("/pix", h.HandlePix)
}

// HandlePix applies a PIX charge event to the matching payment.
// Replayed deliveries are acknowledged without reprocessing.
func (h *WebhookHandler) HandlePix(c *gin.Context) {
	var req PixWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	ctx := c.Request.Context()

	deliveryID := req.EventID
	if deliveryID == "" {
		// PSPs without event IDs still get replay protection per txid+status
		deliveryID = req.TxID + ":" + req.Status
	}

	processed, err := h.idempotency.IsProcessed(ctx, deliveryID)
	if err != nil {
		// A broken idempotency store must not drop payment events
		h.logger.Warn("idempotency store unavailable, processing anyway",
			zap.String("delivery_id", deliveryID),
			zap.Error(err),
		)
	}
	if processed {
		h.logger.Info("duplicate webhook delivery ignored",
			zap.String("delivery_id", deliveryID),
			zap.String("txid", req.TxID),
		)
		h.Success(c, gin.H{"duplicate": true})
		return
	}

	switch req.Status {
	case "confirmed":
		err = h.paymentService.ConfirmByReference(ctx, req.TxID)
	case "failed":
		err = h.paymentService.FailByReference(ctx, req.TxID)
	}
	if err != nil {
		// Not marked processed, so the PSP retry gets another shot
		h.HandleError(c, err)
		return
	}

	if _, err := h.idempotency.MarkProcessed(ctx, deliveryID, h.idempotencyTTL); err != nil {
		h.logger.Warn("failed to record webhook delivery",
			zap.String("delivery_id", deliveryID),
			zap.Error(err),
		)
	}

	h.logger.Info("webhook processed",
		zap.String("txid", req.TxID),
		zap.String("status", req.Status),
	)
	h.Success(c, gin.H{"processed": true})
}
