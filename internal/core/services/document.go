package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages annotated documents.
type DocumentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{docStore: docStore}
}

// Save stores an annotated document. Documents without an ID get a new
// UUID, and CreatedAt is stamped on first save.
func (s *DocumentService) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	now := time.Now()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// List returns all stored documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	return s.docStore.DeleteDocument(ctx, documentID)
}

// FindByURI returns the most recent document stored for uri.
func (s *DocumentService) FindByURI(ctx context.Context, uri string) (*domain.Document, error) {
	return s.docStore.FindDocumentByURI(ctx, uri)
}
