package driven

import "github.com/custodia-labs/timexy/internal/core/domain"

// Tokenizer splits text into an ordered token sequence.
// Token offsets are character offsets and must be strictly increasing.
type Tokenizer interface {
	// Tokenize returns the tokens of text. Whitespace is never a token.
	Tokenize(text string) []domain.Token
}
