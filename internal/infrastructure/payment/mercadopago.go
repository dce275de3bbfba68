package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

const mercadoPagoBaseURL = "https://api.mercadopago.com"

// MercadoPagoProvider creates PIX charges through the Mercado Pago
// payments API. The access token comes from the settings snapshot on
// each call so a token rotation needs no restart.
type MercadoPagoProvider struct {
	baseURL string
	client  *http.Client
}

// NewMercadoPagoProvider creates a Mercado Pago PIX provider
func NewMercadoPagoProvider() *MercadoPagoProvider {
	return &MercadoPagoProvider{
		baseURL: mercadoPagoBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewMercadoPagoProviderWithBaseURL creates a provider against a custom
// endpoint, used by tests
func NewMercadoPagoProviderWithBaseURL(baseURL string, client *http.Client) *MercadoPagoProvider {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &MercadoPagoProvider{baseURL: baseURL, client: client}
}

type mpPaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	ExternalReference string  `json:"external_reference"`
}

type mpPaymentResponse struct {
	ID                 json.Number `json:"id"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// CreateCharge posts a PIX payment and extracts the BR Code material
// from the point_of_interaction block
func (p *MercadoPagoProvider) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	amount, _ := decimal.NewFromInt(req.AmountCents).Div(decimal.NewFromInt(100)).Round(2).Float64()

	description := req.Description
	if description == "" {
		description = "Disk Mensagem"
	}

	body, err := json.Marshal(mpPaymentRequest{
		TransactionAmount: amount,
		Description:       description,
		PaymentMethodID:   "pix",
		ExternalReference: req.ReferenceCode,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.Settings.MPAccessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	// Retried order charges must not create duplicate PSP payments
	httpReq.Header.Set("X-Idempotency-Key", req.ReferenceCode)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mercadopago request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mercadopago returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var mpResp mpPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&mpResp); err != nil {
		return nil, fmt.Errorf("mercadopago response decode failed: %w", err)
	}

	data := mpResp.PointOfInteraction.TransactionData
	if data.QRCode == "" {
		return nil, fmt.Errorf("mercadopago response missing qr_code")
	}

	charge := &Charge{
		Provider:  billing.ProviderMercadoPago,
		Payload:   data.QRCode,
		TicketURL: data.TicketURL,
	}
	if data.QRCodeBase64 != "" {
		charge.QRDataURL = "data:image/png;base64," + data.QRCodeBase64
	}
	return charge, nil
}

var _ PixProvider = (*MercadoPagoProvider)(nil)
