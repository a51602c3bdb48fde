package domain

// KBIDType selects how date values are serialised.
type KBIDType string

const (
	// KBIDTimex3 serialises dates as TIMEX3 type="DATE" value="<iso datetime>".
	KBIDTimex3 KBIDType = "timex3"

	// KBIDTimestamp serialises dates as a Unix timestamp string.
	KBIDTimestamp KBIDType = "timestamp"
)

// Default configuration values.
const (
	DefaultLabel    = "timexy"
	DefaultKBIDType = KBIDTimex3
)

// Config holds the per-call annotation settings. It is the only state
// persisted between runs.
type Config struct {
	// Label is the annotation label attached to every accepted span.
	Label string

	// KBIDType selects the date value serialisation.
	KBIDType KBIDType

	// Overwrite allows spans to replace annotations carrying another label.
	Overwrite bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Label:    DefaultLabel,
		KBIDType: DefaultKBIDType,
	}
}

// ParseKBIDType converts a string to a KBIDType.
// Unknown values produce an InvalidConfigurationError.
func ParseKBIDType(s string) (KBIDType, error) {
	switch KBIDType(s) {
	case KBIDTimex3, KBIDTimestamp:
		return KBIDType(s), nil
	default:
		return "", &InvalidConfigurationError{Key: "kb_id_type", Value: s}
	}
}

// Validate checks every key and reports the first invalid one.
func (c Config) Validate() error {
	if c.Label == "" {
		return &InvalidConfigurationError{Key: "label", Value: c.Label}
	}
	if _, err := ParseKBIDType(string(c.KBIDType)); err != nil {
		return err
	}
	return nil
}
