package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/diskmensagem/backend/internal/domain/settings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mpRequest() ChargeRequest {
	return ChargeRequest{
		OrderID:       uuid.New(),
		ReferenceCode: "DM000007",
		AmountCents:   7000,
		Settings:      settings.Snapshot{MPAccessToken: "APP_USR-token"},
	}
}

func TestMercadoPagoProviderCreateCharge(t *testing.T) {
	t.Run("posts a pix payment and extracts the transaction data", func(t *testing.T) {
		var got mpPaymentRequest
		var gotAuth, gotIdem string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/payments", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			gotIdem = r.Header.Get("X-Idempotency-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": 123456,
				"point_of_interaction": map[string]any{
					"transaction_data": map[string]any{
						"qr_code":        "00020126...6304ABCD",
						"qr_code_base64": "aW1hZ2U=",
						"ticket_url":     "https://mp.example/ticket/1",
					},
				},
			})
		}))
		defer server.Close()

		provider := NewMercadoPagoProviderWithBaseURL(server.URL, server.Client())
		charge, err := provider.CreateCharge(context.Background(), mpRequest())
		require.NoError(t, err)

		assert.Equal(t, billing.ProviderMercadoPago, charge.Provider)
		assert.Equal(t, "00020126...6304ABCD", charge.Payload)
		assert.Equal(t, "data:image/png;base64,aW1hZ2U=", charge.QRDataURL)
		assert.Equal(t, "https://mp.example/ticket/1", charge.TicketURL)

		assert.Equal(t, "Bearer APP_USR-token", gotAuth)
		assert.Equal(t, "DM000007", gotIdem)
		assert.Equal(t, 70.0, got.TransactionAmount)
		assert.Equal(t, "pix", got.PaymentMethodID)
		assert.Equal(t, "DM000007", got.ExternalReference)
	})

	t.Run("surfaces non-2xx responses as errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		provider := NewMercadoPagoProviderWithBaseURL(server.URL, server.Client())
		_, err := provider.CreateCharge(context.Background(), mpRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("fails when the response has no qr code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 1})
		}))
		defer server.Close()

		provider := NewMercadoPagoProviderWithBaseURL(server.URL, server.Client())
		_, err := provider.CreateCharge(context.Background(), mpRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "qr_code")
	})
}
