package billing

import (
	"time"

	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/google/uuid"
)

// PaymentResponse represents the payment material for an order
type PaymentResponse struct {
	OrderID        uuid.UUID `json:"order_id"`
	ReferenceCode  string    `json:"reference_code"`
	Provider       string    `json:"provider"`
	DisplayPayload string    `json:"display_payload"`
	QRDataURL      string    `json:"qr_data_url,omitempty"`
	TicketURL      string    `json:"ticket_url,omitempty"`
	AmountCents    int64     `json:"amount_cents"`
	Confirmed      bool      `json:"confirmed"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToPaymentResponse converts a payment record to a response DTO
func ToPaymentResponse(record *billing.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		OrderID:        record.OrderID,
		ReferenceCode:  record.ReferenceCode,
		Provider:       string(record.Provider),
		DisplayPayload: record.DisplayPayload,
		QRDataURL:      record.QRDataURL,
		TicketURL:      record.TicketURL,
		AmountCents:    record.AmountCents,
		Confirmed:      record.Confirmed,
		CreatedAt:      record.CreatedAt,
	}
}
