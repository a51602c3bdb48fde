package driving

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// AnnotationService recognises temporal expressions in documents.
type AnnotationService interface {
	// Language returns the identifier of the rule table in use.
	Language() string

	// Annotate runs every recognizer over doc and reconciles the
	// candidates into doc.Annotations. An invalid cfg fails the call
	// before the document is touched.
	Annotate(ctx context.Context, doc *domain.Document, cfg domain.Config) (*domain.AnnotationResult, error)

	// AnnotateText tokenizes text into a new document and annotates it.
	AnnotateText(ctx context.Context, text string, cfg domain.Config) (*domain.AnnotationResult, error)
}
