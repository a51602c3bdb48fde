package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/languages"
)

// Ensure ConfigService implements the interface.
var _ driving.ConfigService = (*ConfigService)(nil)

// Config keys for settings storage.
const (
	keyLabel     = "timexy.label"
	keyKBIDType  = "timexy.kb_id_type"
	keyOverwrite = "timexy.overwrite"
	keyLanguage  = "timexy.language"
)

// DefaultLanguage is used when no language has been configured.
const DefaultLanguage = "en"

// ConfigService manages the persisted annotation settings.
type ConfigService struct {
	configStore driven.ConfigStore
}

// NewConfigService creates a new config service.
func NewConfigService(configStore driven.ConfigStore) *ConfigService {
	return &ConfigService{configStore: configStore}
}

// Get returns the stored settings. Missing keys fall back to defaults;
// a stored kb_id_type that is not recognised is an error.
func (s *ConfigService) Get() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if label := s.configStore.GetString(keyLabel); label != "" {
		cfg.Label = label
	}
	if raw := s.configStore.GetString(keyKBIDType); raw != "" {
		kind, err := domain.ParseKBIDType(raw)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.KBIDType = kind
	}
	cfg.Overwrite = s.configStore.GetBool(keyOverwrite)

	return cfg, nil
}

// GetLanguage returns the stored default language identifier.
func (s *ConfigService) GetLanguage() string {
	if lang := s.configStore.GetString(keyLanguage); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Set validates and stores one key.
func (s *ConfigService) Set(key, value string) error {
	switch key {
	case "label":
		if value == "" {
			return &domain.InvalidConfigurationError{Key: key, Value: value}
		}
		return s.configStore.Set(keyLabel, value)

	case "kb_id_type":
		kind, err := domain.ParseKBIDType(value)
		if err != nil {
			return err
		}
		return s.configStore.Set(keyKBIDType, string(kind))

	case "overwrite":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &domain.InvalidConfigurationError{Key: key, Value: value}
		}
		return s.configStore.Set(keyOverwrite, b)

	case "language":
		if !languages.IsSupported(value) {
			return &domain.UnsupportedLanguageError{Language: value}
		}
		return s.configStore.Set(keyLanguage, value)

	default:
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}
}

// Save persists the current settings.
func (s *ConfigService) Save() error {
	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
