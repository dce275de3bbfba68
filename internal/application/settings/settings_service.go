package settings

import (
	"context"

	"github.com/diskmensagem/backend/internal/domain/settings"
	"go.uber.org/zap"
)

// SettingsService manages the single site configuration row
type SettingsService struct {
	settingsRepo settings.Repository
	logger       *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo settings.Repository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the current settings for the admin console
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	response := ToSettingsResponse(current)
	return &response, nil
}

// Update replaces the settings wholesale. Last writer wins; orders
// already created keep the price snapshotted at their creation.
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	err = current.Replace(settings.Values{
		BasePriceCents:   req.BasePriceCents,
		CityName:         req.CityName,
		ContactKey:       req.ContactKey,
		ContactPhoneE164: req.ContactPhoneE164,
		PhoneDisplay:     req.PhoneDisplay,
		MerchantName:     req.MerchantName,
		PSPProvider:      req.PSPProvider,
		WebhookToken:     req.WebhookToken,
		MPAccessToken:    req.MPAccessToken,
	})
	if err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("Settings updated",
		zap.Int64("base_price_cents", current.BasePriceCents),
		zap.String("psp_provider", current.PSPProvider))

	response := ToSettingsResponse(current)
	return &response, nil
}

// PublicConfig returns the storefront subset of the settings
func (s *SettingsService) PublicConfig(ctx context.Context) (*PublicConfigResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	response := ToPublicConfigResponse(current)
	return &response, nil
}
