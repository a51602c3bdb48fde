// Package rule provides a rule-based tokenizer.
//
// Text is split into letter/digit runs and single punctuation or symbol
// runes. An apostrophe between two letters joins them into one token
// ("don't", "aujourd'hui"). Hyphens are always tokens of their own, so
// "2018-Jun-04" yields five tokens and "dix-sept" yields three.
// Whitespace is never emitted.
//
// Offsets are character (rune) offsets, not byte offsets.
// The tokenizer is stateless and safe for concurrent use.
package rule

import (
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.Tokenizer = (*Tokenizer)(nil)

// Tokenizer implements driven.Tokenizer.
type Tokenizer struct{}

// New creates a tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into tokens.
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	if text == "" {
		return nil
	}

	tokens := make([]domain.Token, 0, len(text)/4+1)
	pos := 0 // rune offset of text[i]

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if unicode.IsSpace(r) {
			i += size
			pos++
			continue
		}

		if isWordRune(r) {
			end, n := scanWord(text, i)
			tokens = append(tokens, newToken(text[i:end], pos, pos+n))
			i = end
			pos += n
			continue
		}

		tokens = append(tokens, newToken(text[i:i+size], pos, pos+1))
		i += size
		pos++
	}

	return tokens
}

// scanWord consumes a letter/digit run starting at byte offset i and
// returns its byte end and rune count.
func scanWord(s string, i int) (end, runes int) {
	var prev rune
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case isWordRune(r):
		case isJoiner(r) && unicode.IsLetter(prev) && letterAt(s, i+size):
		default:
			return i, runes
		}
		prev = r
		i += size
		runes++
	}
	return i, runes
}

func letterAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’'
}

func newToken(text string, start, end int) domain.Token {
	return domain.Token{
		Text:    text,
		Start:   start,
		End:     end,
		IsDigit: isDigits(text),
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
