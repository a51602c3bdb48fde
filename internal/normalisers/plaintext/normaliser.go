package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/x-go",
		"text/x-python",
		"text/x-rust",
		"text/x-shellscript",
		"text/csv",
		"text/yaml",
		"text/toml",
		"text/javascript",
		"text/javascript-jsx",
		"text/typescript",
		"text/typescript-jsx",
		"text/css",
		"text/html",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise returns the content with a leading byte order mark removed and
// line endings unified.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	content := strings.TrimPrefix(string(raw.Content), "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return content, nil
}
