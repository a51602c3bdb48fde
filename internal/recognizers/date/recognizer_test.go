package date

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timexy/internal/adapters/driven/tokenizer/rule"
	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/languages"
	"github.com/custodia-labs/timexy/internal/logger"
)

func newDoc(text string) *domain.Document {
	return domain.NewDocument(text, rule.New().Tokenize(text))
}

func recognize(t *testing.T, lang, text string, cfg domain.Config) []domain.Span {
	t.Helper()
	spans, err := New(languages.MustLookup(lang)).Recognize(context.Background(), newDoc(text), cfg)
	require.NoError(t, err)
	return spans
}

func hasOffsets(spans []domain.Span, start, end int) bool {
	for _, s := range spans {
		if s.Start == start && s.End == end {
			return true
		}
	}
	return false
}

// TestRecognize_Fixtures tests that every rule finds its fixture dates
func TestRecognize_Fixtures(t *testing.T) {
	for _, lang := range languages.Supported() {
		table := languages.MustLookup(lang)
		for _, r := range table.Rules {
			for _, fx := range r.Fixtures {
				t.Run(lang+"/"+fx.Text, func(t *testing.T) {
					spans := recognize(t, lang, fx.Text, domain.DefaultConfig())
					assert.True(t, hasOffsets(spans, fx.Start, fx.End),
						"rule %s: no candidate at (%d,%d) in %v", r.Template, fx.Start, fx.End, spans)
				})
			}
		}
	}
}

// TestRecognize_Candidate tests the fields of an emitted candidate
func TestRecognize_Candidate(t *testing.T) {
	spans := recognize(t, "en", "Today is 03.10.1999", domain.Config{Label: "when", KBIDType: domain.KBIDTimex3})
	require.Len(t, spans, 1)

	s := spans[0]
	assert.Equal(t, "when", s.Label)
	assert.Equal(t, "03.10.1999", s.Text)
	assert.Equal(t, 2, s.TokenStart)
	assert.Equal(t, 7, s.TokenEnd)
	assert.Equal(t, domain.ValueDate, s.Value.Kind)
	assert.Equal(t, `TIMEX3 type="DATE" value="1999-10-03T00:00:00"`, s.KBID)
}

// TestRecognize_Timestamp tests timestamp serialisation
func TestRecognize_Timestamp(t *testing.T) {
	cfg := domain.Config{Label: "timexy", KBIDType: domain.KBIDTimestamp}
	spans := recognize(t, "en", "Today is the 01.01.1990, the first day of the year 1990.", cfg)

	require.NotEmpty(t, spans)
	assert.Equal(t, "631152000.0", spans[0].KBID)
}

// TestRecognize_AllRulesRun tests that later rules still scan the full text
func TestRecognize_AllRulesRun(t *testing.T) {
	spans := recognize(t, "en", "Today is Jan 03, 1999", domain.DefaultConfig())

	// "%B %y" matches "Jan 03" and "%b %d, %Y" matches the whole date
	assert.True(t, hasOffsets(spans, 9, 15))
	assert.True(t, hasOffsets(spans, 9, 21))
}

// TestRecognize_SkipsMisaligned tests that matches inside tokens are dropped
func TestRecognize_SkipsMisaligned(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	spans := recognize(t, "en", "Today is 2018-Jun-04", domain.DefaultConfig())

	assert.True(t, hasOffsets(spans, 9, 20))
	// "18-Jun-04" is a valid %d-%b-%y match but starts inside "2018"
	assert.False(t, hasOffsets(spans, 11, 20))
	assert.Contains(t, buf.String(), "[ERROR]")
}

// TestRecognize_SkipsInvalidDates tests that calendar errors do not stop the scan
func TestRecognize_SkipsInvalidDates(t *testing.T) {
	spans := recognize(t, "en", "From 31.04.1999 to 30.04.1999", domain.DefaultConfig())

	require.Len(t, spans, 1)
	assert.Equal(t, "30.04.1999", spans[0].Text)
}

// TestRecognize_RejectsLongerNumbers tests the digit guards
func TestRecognize_RejectsLongerNumbers(t *testing.T) {
	assert.Empty(t, recognize(t, "en", "Call 103.10.99", domain.DefaultConfig()))
	assert.Empty(t, recognize(t, "en", "Version 03.10.995", domain.DefaultConfig()))
}

// TestRecognize_Cancelled tests context cancellation
func TestRecognize_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(languages.MustLookup("en")).Recognize(ctx, newDoc("Today is 03.10.1999"), domain.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestKBID tests date serialisation per kb id type
func TestKBID(t *testing.T) {
	d := day(1990, 1, 1)
	assert.Equal(t, `TIMEX3 type="DATE" value="1990-01-01T00:00:00"`, KBID(d, domain.KBIDTimex3))
	assert.Equal(t, "631152000.0", KBID(d, domain.KBIDTimestamp))
}
