package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Stored documents are copied so callers cannot mutate them afterwards.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// SaveDocument stores or updates a document.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = copyDocument(doc)
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := copyDocument(&doc)
	return &cp, nil
}

// FindDocumentByURI returns the newest document stored for uri.
func (s *DocumentStore) FindDocumentByURI(_ context.Context, uri string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.Document
	for id := range s.documents {
		doc := s.documents[id]
		if doc.URI != uri {
			continue
		}
		if found == nil || newer(&doc, found) {
			found = &doc
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	cp := copyDocument(found)
	return &cp, nil
}

// ListDocuments returns all documents, newest first.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		doc := s.documents[id]
		result = append(result, copyDocument(&doc))
	}
	sort.Slice(result, func(i, j int) bool {
		return newer(&result[i], &result[j])
	})
	return result, nil
}

// DeleteDocument removes a document.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.documents, id)
	return nil
}

// newer orders documents newest first, then by ID.
func newer(a, b *domain.Document) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

func copyDocument(doc *domain.Document) domain.Document {
	cp := *doc
	cp.Tokens = append([]domain.Token(nil), doc.Tokens...)
	if doc.Annotations != nil {
		cp.Annotations = doc.Annotations.Clone()
	}
	if doc.Metadata != nil {
		cp.Metadata = make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			cp.Metadata[k] = v
		}
	}
	return cp
}
