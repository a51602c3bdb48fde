package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedLanguage", ErrUnsupportedLanguage},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration},
		{"ErrDateParse", ErrDateParse},
		{"ErrSpanAlignment", ErrSpanAlignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestUnsupportedLanguageError tests message and unwrapping
func TestUnsupportedLanguageError(t *testing.T) {
	err := &UnsupportedLanguageError{Language: "xx"}

	assert.Equal(t, `language "xx" not supported by timexy`, err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	assert.False(t, errors.Is(err, ErrInvalidConfiguration))

	wrapped := fmt.Errorf("creating annotator: %w", err)
	var target *UnsupportedLanguageError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "xx", target.Language)
}

// TestInvalidConfigurationError tests message and unwrapping
func TestInvalidConfigurationError(t *testing.T) {
	err := &InvalidConfigurationError{Key: "kb_id_type", Value: "epoch"}

	assert.Equal(t, `illegal value for kb_id_type: "epoch"`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

// TestDateParseError tests that both the sentinel and cause are reachable
func TestDateParseError(t *testing.T) {
	cause := errors.New("day out of range")
	err := &DateParseError{Text: "31.02.1999", Template: "%d.%m.%Y", Start: 9, End: 19, Err: cause}

	assert.Contains(t, err.Error(), "31.02.1999")
	assert.Contains(t, err.Error(), "(9,19)")
	assert.True(t, errors.Is(err, ErrDateParse))
	assert.True(t, errors.Is(err, cause))
}

// TestSpanAlignmentError tests message and unwrapping
func TestSpanAlignmentError(t *testing.T) {
	err := &SpanAlignmentError{Start: 3, End: 7, Reason: "start is not a token boundary"}

	assert.Equal(t, "span (3,7): start is not a token boundary", err.Error())
	assert.True(t, errors.Is(err, ErrSpanAlignment))
}

// TestRejectReason_String tests reject reason descriptions
func TestRejectReason_String(t *testing.T) {
	assert.Equal(t, "foreign label", RejectForeignLabel.String())
	assert.Equal(t, "longer span exists", RejectLongerExists.String())
	assert.Equal(t, "insert failed", RejectInsertFailed.String())
	assert.Equal(t, "replaced", RejectReplaced.String())
	assert.Equal(t, "unknown", RejectReason(7).String())
}
