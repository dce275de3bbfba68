package payment

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/diskmensagem/backend/internal/domain/billing"
	qrcode "github.com/skip2/go-qrcode"
)

// qrImageSize is the pixel width of the generated QR PNG
const qrImageSize = 256

// StaticProvider builds a local static BR Code from the configured PIX
// key. No PSP round trip: settlement is confirmed manually by staff.
type StaticProvider struct{}

// NewStaticProvider creates a static PIX provider
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// CreateCharge builds the BR Code payload and its QR image
func (p *StaticProvider) CreateCharge(_ context.Context, req ChargeRequest) (*Charge, error) {
	// The merchant city slot is narrow on some bank apps; mirror the
	// payload the business already distributes: 9 chars, uppercase.
	city := strings.ToUpper(truncate(req.Settings.CityName, 9))
	if city == "" {
		city = "CIDADE"
	}
	merchantName := req.Settings.MerchantName
	if merchantName == "" {
		merchantName = "Disk Mensagem"
	}

	payload := BuildBRCode(req.Settings.ContactKey, merchantName, city, req.AmountCents, req.ReferenceCode)

	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, err
	}

	return &Charge{
		Provider:  billing.ProviderStatic,
		Payload:   payload,
		QRDataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

var _ PixProvider = (*StaticProvider)(nil)
