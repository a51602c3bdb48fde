package driven

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// DocumentStore persists annotated documents.
// Implementations store the text, tokens and accepted spans so a document
// can be listed and shown without re-annotating it.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if no document has that ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// FindDocumentByURI returns the newest document stored for uri.
	// Returns domain.ErrNotFound if none matches.
	FindDocumentByURI(ctx context.Context, uri string) (*domain.Document, error)

	// ListDocuments returns all stored documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document and its annotations.
	DeleteDocument(ctx context.Context, id string) error
}
