package settings

import (
	"time"

	"github.com/diskmensagem/backend/internal/domain/settings"
)

// UpdateSettingsRequest replaces every mutable settings field at once
type UpdateSettingsRequest struct {
	BasePriceCents   int64  `json:"base_price_cents" binding:"min=0"`
	CityName         string `json:"city_name" binding:"required,max=100"`
	ContactKey       string `json:"contact_key" binding:"required,max=120"`
	ContactPhoneE164 string `json:"contact_phone_e164" binding:"max=30"`
	PhoneDisplay     string `json:"phone_display" binding:"max=40"`
	MerchantName     string `json:"merchant_name" binding:"max=100"`
	PSPProvider      string `json:"psp_provider" binding:"required,oneof=static mercadopago"`
	WebhookToken     string `json:"webhook_token" binding:"max=120"`
	MPAccessToken    string `json:"mp_access_token" binding:"max=200"`
}

// SettingsResponse is the admin view of the settings row
type SettingsResponse struct {
	BasePriceCents   int64     `json:"base_price_cents"`
	CityName         string    `json:"city_name"`
	ContactKey       string    `json:"contact_key"`
	ContactPhoneE164 string    `json:"contact_phone_e164"`
	PhoneDisplay     string    `json:"phone_display"`
	MerchantName     string    `json:"merchant_name"`
	PSPProvider      string    `json:"psp_provider"`
	WebhookToken     string    `json:"webhook_token"`
	MPAccessToken    string    `json:"mp_access_token"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PublicConfigResponse is the storefront view. Secrets stay out.
type PublicConfigResponse struct {
	BasePriceCents int64  `json:"base_price_cents"`
	CityName       string `json:"city_name"`
	PhoneDisplay   string `json:"phone_display"`
	PhoneE164      string `json:"phone_e164"`
	MerchantName   string `json:"merchant_name"`
}

// ToSettingsResponse converts the settings row to the admin DTO
func ToSettingsResponse(s *settings.Settings) SettingsResponse {
	return SettingsResponse{
		BasePriceCents:   s.BasePriceCents,
		CityName:         s.CityName,
		ContactKey:       s.ContactKey,
		ContactPhoneE164: s.ContactPhoneE164,
		PhoneDisplay:     s.PhoneDisplay,
		MerchantName:     s.MerchantName,
		PSPProvider:      s.PSPProvider,
		WebhookToken:     s.WebhookToken,
		MPAccessToken:    s.MPAccessToken,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToPublicConfigResponse converts the settings row to the public DTO
func ToPublicConfigResponse(s *settings.Settings) PublicConfigResponse {
	return PublicConfigResponse{
		BasePriceCents: s.BasePriceCents,
		CityName:       s.CityName,
		PhoneDisplay:   s.PhoneDisplay,
		PhoneE164:      s.ContactPhoneE164,
		MerchantName:   s.MerchantName,
	}
}
