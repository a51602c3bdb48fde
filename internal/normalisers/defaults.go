package normalisers

import (
	"github.com/custodia-labs/timexy/internal/normalisers/html"
	"github.com/custodia-labs/timexy/internal/normalisers/markdown"
	"github.com/custodia-labs/timexy/internal/normalisers/plaintext"
)

// Defaults returns a registry holding the built-in normalisers.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	return r
}
