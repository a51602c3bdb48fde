package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise returns the readable text of an HTML document, one block
// element per line with entities decoded.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	return stripHTML(string(raw.Content)), nil
}

var (
	droppedElements = regexp.MustCompile(`(?is)<(script|style|noscript|head|svg|template)[^>]*>.*?</(script|style|noscript|head|svg|template)>`)
	comments        = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockBoundary   = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|li|tr|td|th|blockquote|pre|table|section|article|header|footer)(\s[^>]*)?>`)
	lineBreaks      = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	anyTag          = regexp.MustCompile(`<[^>]+>`)
	multiSpaces     = regexp.MustCompile(`[ \t\x{00a0}]+`)
)

// stripHTML removes markup and returns the non-empty text lines.
func stripHTML(content string) string {
	content = droppedElements.ReplaceAllString(content, "")
	content = comments.ReplaceAllString(content, "")
	content = blockBoundary.ReplaceAllString(content, "\n")
	content = lineBreaks.ReplaceAllString(content, "\n")
	content = anyTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	result := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
