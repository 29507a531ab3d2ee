package store

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/nexera/storefront/internal/domain/shared"
	"github.com/nexera/storefront/internal/domain/store"
)

// SettingsService manages the customer-changeable configuration, currently
// just the spreadsheet endpoint. Saving a non-empty endpoint triggers a
// background reconcile so the history catches up immediately.
type SettingsService struct {
	configStore store.ConfigStore
	orders      *OrderService
	logger      *zap.Logger
}

// NewSettingsService creates the service.
func NewSettingsService(configStore store.ConfigStore, orders *OrderService, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		orders:      orders,
		logger:      logger,
	}
}

// Get returns the persisted configuration.
func (s *SettingsService) Get(ctx context.Context) (SettingsResponse, error) {
	cfg, err := s.configStore.LoadConfig(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	return SettingsResponse{ScriptURL: cfg.ScriptURL}, nil
}

// Update stores a new spreadsheet endpoint. An empty value disables cloud
// sync; anything else must be an absolute http or https URL.
func (s *SettingsService) Update(ctx context.Context, scriptURL string) (SettingsResponse, error) {
	scriptURL = strings.TrimSpace(scriptURL)
	if scriptURL != "" {
		parsed, err := url.Parse(scriptURL)
		if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return SettingsResponse{}, shared.NewDomainError("INVALID_INPUT", "script url must be an absolute http(s) url")
		}
	}

	cfg := store.AppConfig{ScriptURL: scriptURL}
	if err := s.configStore.SaveConfig(ctx, cfg); err != nil {
		return SettingsResponse{}, err
	}
	s.orders.SetEndpoint(scriptURL)

	if cfg.CloudEnabled() {
		bg := context.WithoutCancel(ctx)
		go func() {
			if _, err := s.orders.Reconcile(bg); err != nil {
				s.logger.Warn("reconcile after settings change failed", zap.Error(err))
			}
		}()
	}

	return SettingsResponse{ScriptURL: scriptURL}, nil
}
