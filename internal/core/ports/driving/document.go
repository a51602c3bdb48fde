package driving

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// DocumentService manages annotated documents.
type DocumentService interface {
	// Save stores an annotated document, assigning an ID when it has none.
	Save(ctx context.Context, doc *domain.Document) error

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, documentID string) error
}
