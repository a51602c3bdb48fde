package date

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/languages"
	"github.com/custodia-labs/timexy/internal/logger"
)

// Name is the registry name of the date recognizer.
const Name = "date"

// Verify interface compliance.
var _ driven.Recognizer = (*Recognizer)(nil)

// Recognizer finds dates using a language's rule table.
// It holds no per-document state and is safe for concurrent use.
type Recognizer struct {
	table *languages.Table
}

// New creates a date recognizer for a rule table.
func New(table *languages.Table) *Recognizer {
	return &Recognizer{table: table}
}

// Name returns the recognizer name.
func (r *Recognizer) Name() string {
	return Name
}

// Recognize returns date candidates, rule by rule in table order and
// left to right within a rule.
func (r *Recognizer) Recognize(ctx context.Context, doc *domain.Document, cfg domain.Config) ([]domain.Span, error) {
	var spans []domain.Span

	for i := range r.table.Rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rule := &r.table.Rules[i]
		for _, m := range findAll(rule.Regexp(), doc.Text, rule.NotAfterDigit) {
			span, err := r.candidate(doc, rule, m, cfg)
			if err != nil {
				logSkip(err)
				continue
			}
			spans = append(spans, span)
		}
	}

	return spans, nil
}

// candidate parses one match and maps it onto the document's tokens.
func (r *Recognizer) candidate(doc *domain.Document, rule *languages.Rule, m match, cfg domain.Config) (domain.Span, error) {
	text := doc.Text[m.start:m.end]
	start := utf8.RuneCountInString(doc.Text[:m.start])
	end := start + utf8.RuneCountInString(text)

	d, err := Parse(r.table, text, rule.Template)
	if err != nil {
		return domain.Span{}, &domain.DateParseError{
			Text:     text,
			Template: rule.Template,
			Start:    start,
			End:      end,
			Err:      err,
		}
	}

	tokenStart, tokenEnd, err := doc.TokenRange(start, end)
	if err != nil {
		return domain.Span{}, err
	}

	span, err := doc.NewSpan(tokenStart, tokenEnd, cfg.Label, domain.DateValue(d))
	if err != nil {
		return domain.Span{}, err
	}
	span.KBID = KBID(d, cfg.KBIDType)

	logger.Debug("date %q matched %s at (%d,%d)", text, rule.Template, start, end)
	return span, nil
}

// KBID serialises a date according to the configured kb id type.
func KBID(d time.Time, kind domain.KBIDType) string {
	if kind == domain.KBIDTimestamp {
		return Timestamp(d)
	}
	return domain.FormatTIMEX3(domain.Timex3Date, ISO(d))
}

func logSkip(err error) {
	if errors.Is(err, domain.ErrDateParse) {
		logger.Info("skipping date match: %v", err)
		return
	}
	logger.Error("skipping date match: %v", err)
}
