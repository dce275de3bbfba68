package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appbilling "github.com/diskmensagem/backend/internal/application/billing"
	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/diskmensagem/backend/internal/infrastructure/cache"
	"github.com/diskmensagem/backend/internal/infrastructure/payment"
	"github.com/diskmensagem/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const webhookTestToken = "hook-secret"

type webhookFixture struct {
	orderRepo   *MockOrderRepository
	paymentRepo *MockPaymentRepository
	router      *gin.Engine
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()

	f := &webhookFixture{
		orderRepo:   new(MockOrderRepository),
		paymentRepo: new(MockPaymentRepository),
	}

	logger := zap.NewNop()
	paymentService := appbilling.NewPaymentService(
		f.orderRepo, f.paymentRepo, new(MockSettingsRepository),
		payment.NewSelector(payment.NewStaticProvider(), nil), logger,
	)

	h := NewWebhookHandler(paymentService, cache.NewInMemoryIdempotencyStore(), time.Hour, logger)

	router := gin.New()
	group := router.Group("/api/v1/webhooks")
	group.Use(middleware.WebhookAuth(func(ctx context.Context) (string, error) {
		return webhookTestToken, nil
	}))
	h.Register(group)
	f.router = router
	return f
}

func (f *webhookFixture) post(t *testing.T, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/pix", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.WebhookTokenHeader, token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// confirmedPayment wires the mocks for a successful confirmation flow
func (f *webhookFixture) confirmedPayment(t *testing.T) (*ordering.Order, *billing.PaymentRecord) {
	t.Helper()
	order := newTestOrder(t)
	record, err := billing.NewPaymentRecord(
		order.ID, billing.ReferenceCodeForOrder(order.ID), billing.ProviderStatic,
		"payload", "", "", order.AmountCents,
	)
	require.NoError(t, err)

	f.paymentRepo.On("FindByReferenceCode", mock.Anything, record.ReferenceCode).Return(record, nil)
	f.paymentRepo.On("Save", mock.Anything, record).Return(nil)
	f.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.orderRepo.On("Save", mock.Anything, order).Return(nil)
	return order, record
}

func TestWebhookHandler_HandlePix(t *testing.T) {
	t.Run("confirms a payment and marks the order paid", func(t *testing.T) {
		f := newWebhookFixture(t)
		order, record := f.confirmedPayment(t)

		w := f.post(t, webhookTestToken, gin.H{
			"event_id": "evt-1",
			"txid":     record.ReferenceCode,
			"status":   "confirmed",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, record.Confirmed)
		assert.Equal(t, ordering.OrderStatusPaid, order.Status)
	})

	t.Run("ignores a replayed delivery", func(t *testing.T) {
		f := newWebhookFixture(t)
		_, record := f.confirmedPayment(t)

		body := gin.H{
			"event_id": "evt-replay",
			"txid":     record.ReferenceCode,
			"status":   "confirmed",
		}

		first := f.post(t, webhookTestToken, body)
		assert.Equal(t, http.StatusOK, first.Code)

		second := f.post(t, webhookTestToken, body)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Contains(t, second.Body.String(), `"duplicate":true`)

		f.paymentRepo.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("marks a payment failed without touching the order", func(t *testing.T) {
		f := newWebhookFixture(t)
		order := newTestOrder(t)
		record, err := billing.NewPaymentRecord(
			order.ID, billing.ReferenceCodeForOrder(order.ID), billing.ProviderStatic,
			"payload", "", "", order.AmountCents,
		)
		require.NoError(t, err)
		f.paymentRepo.On("FindByReferenceCode", mock.Anything, record.ReferenceCode).Return(record, nil)
		f.paymentRepo.On("Save", mock.Anything, record).Return(nil)

		w := f.post(t, webhookTestToken, gin.H{
			"txid":   record.ReferenceCode,
			"status": "failed",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, record.Failed)
		assert.Equal(t, ordering.OrderStatusPending, order.Status)
		f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		f := newWebhookFixture(t)

		w := f.post(t, "", gin.H{"txid": "DM00000000000000", "status": "confirmed"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		f := newWebhookFixture(t)

		w := f.post(t, "wrong", gin.H{"txid": "DM00000000000000", "status": "confirmed"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		f := newWebhookFixture(t)

		w := f.post(t, webhookTestToken, gin.H{"txid": "DM00000000000000", "status": "pending"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps an unknown txid to 404 so the PSP can retry", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.paymentRepo.On("FindByReferenceCode", mock.Anything, "DM00000000000000").Return(nil, shared.ErrNotFound)

		w := f.post(t, webhookTestToken, gin.H{"txid": "DM00000000000000", "status": "confirmed"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
