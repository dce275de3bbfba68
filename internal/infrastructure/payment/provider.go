package payment

import (
	"context"

	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/diskmensagem/backend/internal/domain/settings"
	"github.com/google/uuid"
)

// ChargeRequest carries everything a provider needs to mint PIX
// payment instructions for one order.
type ChargeRequest struct {
	OrderID       uuid.UUID
	ReferenceCode string
	AmountCents   int64
	Description   string
	Settings      settings.Snapshot
}

// Charge is the provider-produced payment material
type Charge struct {
	Provider billing.Provider
	// Payload is the copy-and-paste BR Code text
	Payload string
	// QRDataURL is a data:image/png;base64 URL of the QR code, when available
	QRDataURL string
	// TicketURL is a provider-hosted checkout page, when available
	TicketURL string
}

// PixProvider creates PIX charges. Implementations must be safe for
// concurrent use.
type PixProvider interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

// Selector picks the provider configured in settings, falling back to
// the static one when the configured provider is unavailable.
type Selector struct {
	static      PixProvider
	mercadoPago PixProvider
}

// NewSelector creates a provider selector
func NewSelector(static, mercadoPago PixProvider) *Selector {
	return &Selector{static: static, mercadoPago: mercadoPago}
}

// For returns the provider matching the settings snapshot
func (s *Selector) For(snap settings.Snapshot) PixProvider {
	if snap.PSPProvider == string(billing.ProviderMercadoPago) && snap.MPAccessToken != "" && s.mercadoPago != nil {
		return s.mercadoPago
	}
	return s.static
}
