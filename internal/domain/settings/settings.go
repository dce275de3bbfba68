package settings

import (
	"strings"

	"github.com/diskmensagem/backend/internal/domain/shared"
)

// Default values applied when the settings row does not exist yet
const (
	DefaultBasePriceCents = 7000
	DefaultCityName       = "Sua Cidade"
	DefaultContactKey     = "+5518997053664"
	DefaultPhoneE164      = "+5518997053664"
	DefaultPhoneDisplay   = "(18) 99705-3664"
	DefaultMerchantName   = "Disk Mensagem"
	DefaultPSPProvider    = "static"
)

// Settings is the single shared site configuration row. Writes replace
// the object wholesale under last-writer-wins; readers receive a copy so
// in-flight operations are not affected by concurrent updates.
type Settings struct {
	shared.BaseEntity
	BasePriceCents   int64  `gorm:"not null;default:7000"`
	CityName         string `gorm:"type:varchar(100);not null"`
	ContactKey       string `gorm:"type:varchar(120);not null"`
	ContactPhoneE164 string `gorm:"type:varchar(30);not null"`
	PhoneDisplay     string `gorm:"type:varchar(40);not null"`
	MerchantName     string `gorm:"type:varchar(100);not null"`
	PSPProvider      string `gorm:"type:varchar(20);not null;default:'static'"`
	WebhookToken     string `gorm:"type:varchar(120)"`
	MPAccessToken    string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "settings"
}

// NewDefaultSettings creates the settings row with default values
func NewDefaultSettings() *Settings {
	return &Settings{
		BaseEntity:       shared.NewBaseEntity(),
		BasePriceCents:   DefaultBasePriceCents,
		CityName:         DefaultCityName,
		ContactKey:       DefaultContactKey,
		ContactPhoneE164: DefaultPhoneE164,
		PhoneDisplay:     DefaultPhoneDisplay,
		MerchantName:     DefaultMerchantName,
		PSPProvider:      DefaultPSPProvider,
	}
}

// Replace overwrites every mutable field from the given values
func (s *Settings) Replace(v Values) error {
	if err := v.Validate(); err != nil {
		return err
	}
	s.BasePriceCents = v.BasePriceCents
	s.CityName = v.CityName
	s.ContactKey = v.ContactKey
	s.ContactPhoneE164 = v.ContactPhoneE164
	s.PhoneDisplay = v.PhoneDisplay
	s.MerchantName = v.MerchantName
	s.PSPProvider = v.PSPProvider
	s.WebhookToken = v.WebhookToken
	s.MPAccessToken = v.MPAccessToken
	s.Touch()
	return nil
}

// Values is the full set of mutable settings fields, exchanged wholesale
type Values struct {
	BasePriceCents   int64
	CityName         string
	ContactKey       string
	ContactPhoneE164 string
	PhoneDisplay     string
	MerchantName     string
	PSPProvider      string
	WebhookToken     string
	MPAccessToken    string
}

// Validate checks the values before they replace the stored settings
func (v Values) Validate() error {
	if v.BasePriceCents < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}
	if strings.TrimSpace(v.CityName) == "" {
		return shared.NewDomainError("INVALID_CITY", "City name cannot be empty")
	}
	if strings.TrimSpace(v.ContactKey) == "" {
		return shared.NewDomainError("INVALID_CONTACT_KEY", "Contact key cannot be empty")
	}
	switch v.PSPProvider {
	case "static", "mercadopago":
	default:
		return shared.NewDomainError("INVALID_PROVIDER", "PSP provider must be static or mercadopago")
	}
	return nil
}

// Snapshot is an immutable copy handed to readers
type Snapshot struct {
	BasePriceCents   int64
	CityName         string
	ContactKey       string
	ContactPhoneE164 string
	PhoneDisplay     string
	MerchantName     string
	PSPProvider      string
	WebhookToken     string
	MPAccessToken    string
}

// Snapshot returns an immutable copy of the current values
func (s *Settings) Snapshot() Snapshot {
	return Snapshot{
		BasePriceCents:   s.BasePriceCents,
		CityName:         s.CityName,
		ContactKey:       s.ContactKey,
		ContactPhoneE164: s.ContactPhoneE164,
		PhoneDisplay:     s.PhoneDisplay,
		MerchantName:     s.MerchantName,
		PSPProvider:      s.PSPProvider,
		WebhookToken:     s.WebhookToken,
		MPAccessToken:    s.MPAccessToken,
	}
}
