package driving

import "github.com/custodia-labs/timexy/internal/core/domain"

// ConfigService manages the persisted annotation settings.
type ConfigService interface {
	// Get returns the stored settings, falling back to defaults for
	// missing keys.
	Get() (domain.Config, error)

	// GetLanguage returns the stored default language identifier.
	GetLanguage() string

	// Set validates and stores one key. Keys are "label", "kb_id_type",
	// "overwrite" and "language".
	Set(key, value string) error

	// Save persists the current settings.
	Save() error
}
