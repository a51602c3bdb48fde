package driven

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// Normaliser extracts annotatable plain text from a raw document.
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority breaks ties when several normalisers claim a MIME type.
	// Higher wins.
	Priority() int

	// Normalise returns the text the annotator should see.
	Normalise(ctx context.Context, raw *domain.RawDocument) (string, error)
}
