// Package duration recognizes durations such as "six years" or "48 days".
//
// A duration is a quantity followed by a unit word from the language's
// rule table. The quantity is either a token of digits, kept verbatim, or
// a number word, converted to its value. With digits the unit word must
// match exactly; with number words both sides are compared lower-cased.
// The two may be joined by a hyphen ("one-year"), and hyphenated number
// words ("dix-sept") are read across their three tokens.
//
// Zero quantities are never emitted.
package duration

import (
	"context"
	"strconv"
	"strings"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/languages"
	"github.com/custodia-labs/timexy/internal/logger"
)

// Name is the registry name of the duration recognizer.
const Name = "duration"

// Verify interface compliance.
var _ driven.Recognizer = (*Recognizer)(nil)

// Recognizer finds durations using a language's unit and number words.
// It holds no per-document state and is safe for concurrent use.
type Recognizer struct {
	table *languages.Table
}

// New creates a duration recognizer for a rule table.
func New(table *languages.Table) *Recognizer {
	return &Recognizer{table: table}
}

// Name returns the recognizer name.
func (r *Recognizer) Name() string {
	return Name
}

// quantity is a parsed number phrase starting at some token.
type quantity struct {
	value  string
	digits bool
	next   int // index of the first token after the phrase
}

type key struct {
	unit       domain.Unit
	start, end int
}

// Recognize returns duration candidates ordered by first token. Each
// (unit, token range) pair is reported once even when several unit
// variants match it.
func (r *Recognizer) Recognize(ctx context.Context, doc *domain.Document, cfg domain.Config) ([]domain.Span, error) {
	var spans []domain.Span
	seen := make(map[key]bool)

	for i := range doc.Tokens {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, q := range r.quantities(doc.Tokens, i) {
			for _, unit := range r.table.Units {
				end, ok := r.unitAt(doc.Tokens, q, unit)
				if !ok {
					continue
				}
				if isZero(q.value) {
					logger.Debug("dropping zero duration at token %d", i)
					continue
				}

				k := key{unit: unit.Unit, start: i, end: end}
				if seen[k] {
					continue
				}
				seen[k] = true

				value := domain.DurationValue(q.value, unit.Unit)
				span, err := doc.NewSpan(i, end, cfg.Label, value)
				if err != nil {
					logger.Error("skipping duration match: %v", err)
					continue
				}
				span.KBID = domain.FormatTIMEX3(domain.Timex3Duration, value.Period())
				spans = append(spans, span)
			}
		}
	}

	return spans, nil
}

// quantities returns every number phrase starting at token i.
func (r *Recognizer) quantities(tokens []domain.Token, i int) []quantity {
	var out []quantity

	if r.numberWordTail(tokens, i) {
		return nil
	}

	tok := tokens[i]
	if tok.IsDigit {
		return append(out, quantity{value: tok.Text, digits: true, next: i + 1})
	}

	if n, ok := r.table.NumberValue(tok.Text); ok {
		out = append(out, quantity{value: strconv.Itoa(n), next: i + 1})
	}
	if hyphenated(tokens, i) {
		joined := tokens[i].Text + "-" + tokens[i+2].Text
		if n, ok := r.table.NumberValue(joined); ok {
			out = append(out, quantity{value: strconv.Itoa(n), next: i + 3})
		}
	}
	return out
}

// numberWordTail reports whether token i ends a hyphenated number word
// such as the "sept" of "dix-sept".
func (r *Recognizer) numberWordTail(tokens []domain.Token, i int) bool {
	if !hyphenated(tokens, i-2) {
		return false
	}
	_, ok := r.table.NumberValue(tokens[i-2].Text + "-" + tokens[i].Text)
	return ok
}

// unitAt reports whether a unit word follows the quantity, directly or
// after a joining hyphen, and returns the end of the duration.
func (r *Recognizer) unitAt(tokens []domain.Token, q quantity, unit languages.UnitWords) (int, bool) {
	at := q.next
	if at < len(tokens) && tokens[at].Text == "-" && hyphenated(tokens, at-1) {
		at++
	}
	if at >= len(tokens) {
		return 0, false
	}

	text := tokens[at].Text
	for _, word := range unit.Words {
		if q.digits && text == word {
			return at + 1, true
		}
		if !q.digits && r.table.Lower(text) == r.table.Lower(word) {
			return at + 1, true
		}
	}
	return 0, false
}

// hyphenated reports whether tokens i, i+1 and i+2 are written as one
// word joined by a hyphen, with no whitespace around it.
func hyphenated(tokens []domain.Token, i int) bool {
	if i < 0 || i+2 >= len(tokens) || tokens[i+1].Text != "-" {
		return false
	}
	return tokens[i].End == tokens[i+1].Start && tokens[i+1].End == tokens[i+2].Start
}

// isZero reports whether a quantity is numerically zero.
func isZero(v string) bool {
	return strings.Trim(v, "0") == ""
}
