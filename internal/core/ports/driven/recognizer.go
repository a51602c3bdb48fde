package driven

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// Recognizer proposes candidate spans for a document.
// Candidates carry the label and serialised value from cfg; they are not
// inserted into the document. The reconciler decides which ones survive.
type Recognizer interface {
	// Name returns the recognizer name for logging and configuration.
	Name() string

	// Recognize returns candidates in discovery order.
	Recognize(ctx context.Context, doc *domain.Document, cfg domain.Config) ([]domain.Span, error)
}

// RecognizerPipeline runs a fixed list of recognizers in order.
type RecognizerPipeline interface {
	// Candidates returns the candidates of every recognizer, grouped by
	// recognizer and in pipeline order.
	Candidates(ctx context.Context, doc *domain.Document, cfg domain.Config) ([][]domain.Span, error)

	// Names returns the recognizer names in pipeline order.
	Names() []string
}
