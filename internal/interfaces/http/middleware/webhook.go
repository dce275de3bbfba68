package middleware

import (
	"context"
	"crypto/subtle"

	"github.com/diskmensagem/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// WebhookTokenHeader carries the shared secret on provider callbacks
const WebhookTokenHeader = "X-Webhook-Token"

// WebhookTokenLookup resolves the currently configured webhook token.
// The token lives in settings so admins can rotate it without a restart.
type WebhookTokenLookup func(ctx context.Context) (string, error)

// WebhookAuth validates the shared webhook token on provider callbacks
func WebhookAuth(lookup WebhookTokenLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		expected, err := lookup(c.Request.Context())
		if err != nil || expected == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Webhook authentication is not configured")
			return
		}

		presented := c.GetHeader(WebhookTokenHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid webhook token")
			return
		}

		c.Next()
	}
}
