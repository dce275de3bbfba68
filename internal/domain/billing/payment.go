package billing

import (
	"encoding/hex"
	"strings"

	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Provider identifies the PIX backend that produced the payment payload
type Provider string

const (
	ProviderStatic      Provider = "static"
	ProviderMercadoPago Provider = "mercadopago"
)

// IsValid checks if the provider is known
func (p Provider) IsValid() bool {
	return p == ProviderStatic || p == ProviderMercadoPago
}

// ReferenceCodeForOrder derives the payment reference code (PIX txid)
// from the order id. Deterministic on purpose: two racing generation
// attempts for the same order compute the same code.
func ReferenceCodeForOrder(orderID uuid.UUID) string {
	return "DM" + strings.ToUpper(hex.EncodeToString(orderID[:7]))
}

// PaymentRecord holds the payment instructions minted for exactly one
// order. At most one record exists per order; the unique index on
// OrderID makes concurrent generation race-safe. The record is immutable
// once created except for the confirmation flags, which are set from the
// outside (staff action or PSP webhook) and never inferred.
type PaymentRecord struct {
	shared.BaseEntity
	OrderID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ReferenceCode  string    `gorm:"type:varchar(40);not null;uniqueIndex"`
	Provider       Provider  `gorm:"type:varchar(20);not null"`
	DisplayPayload string    `gorm:"type:text;not null"`
	QRDataURL      string    `gorm:"type:text"`
	TicketURL      string    `gorm:"type:varchar(500)"`
	AmountCents    int64     `gorm:"not null"`
	Confirmed      bool      `gorm:"not null;default:false"`
	Failed         bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (PaymentRecord) TableName() string {
	return "payment_records"
}

// NewPaymentRecord creates a payment record for an order
func NewPaymentRecord(orderID uuid.UUID, referenceCode string, provider Provider, displayPayload, qrDataURL, ticketURL string, amountCents int64) (*PaymentRecord, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if referenceCode == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Reference code cannot be empty")
	}
	if !provider.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Unknown payment provider: "+string(provider))
	}
	if displayPayload == "" {
		return nil, shared.NewDomainError("INVALID_PAYLOAD", "Display payload cannot be empty")
	}
	if amountCents <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	return &PaymentRecord{
		BaseEntity:     shared.NewBaseEntity(),
		OrderID:        orderID,
		ReferenceCode:  referenceCode,
		Provider:       provider,
		DisplayPayload: displayPayload,
		QRDataURL:      qrDataURL,
		TicketURL:      ticketURL,
		AmountCents:    amountCents,
	}, nil
}

// Confirm marks the payment as settled. Settlement is observed
// externally, never derived.
func (p *PaymentRecord) Confirm() {
	p.Confirmed = true
	p.Failed = false
	p.Touch()
}

// Fail marks the payment as rejected by the PSP
func (p *PaymentRecord) Fail() {
	p.Failed = true
	p.Touch()
}
