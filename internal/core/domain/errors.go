package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent annotation failures.
// Typed errors below unwrap to one of these so callers can use errors.Is.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedLanguage indicates no rule table is registered for a language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidConfiguration indicates an unrecognised configuration value.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDateParse indicates a matched date string failed calendar validation.
	ErrDateParse = errors.New("date parse failed")

	// ErrSpanAlignment indicates a span could not be mapped onto whole tokens
	// or was rejected by the annotation set.
	ErrSpanAlignment = errors.New("span alignment failed")
)

// UnsupportedLanguageError is returned at construction time when no rule
// table exists for the requested language identifier.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %q not supported by timexy", e.Language)
}

// Unwrap returns ErrUnsupportedLanguage.
func (e *UnsupportedLanguageError) Unwrap() error {
	return ErrUnsupportedLanguage
}

// InvalidConfigurationError is returned when a configuration key holds a
// value the annotator cannot honour.
type InvalidConfigurationError struct {
	Key   string
	Value string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("illegal value for %s: %q", e.Key, e.Value)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// DateParseError describes a regex match that is not a valid calendar date.
type DateParseError struct {
	Text     string
	Template string
	Start    int
	End      int
	Err      error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parsing date %q with template %q at (%d,%d): %v", e.Text, e.Template, e.Start, e.End, e.Err)
}

// Unwrap returns both the sentinel and the underlying parse error.
func (e *DateParseError) Unwrap() []error {
	return []error{ErrDateParse, e.Err}
}

// SpanAlignmentError describes a candidate whose offsets do not fit the
// document's tokens or annotation set.
type SpanAlignmentError struct {
	Start  int
	End    int
	Reason string
}

func (e *SpanAlignmentError) Error() string {
	return fmt.Sprintf("span (%d,%d): %s", e.Start, e.End, e.Reason)
}

// Unwrap returns ErrSpanAlignment.
func (e *SpanAlignmentError) Unwrap() error {
	return ErrSpanAlignment
}
