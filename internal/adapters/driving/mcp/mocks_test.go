package mcp

import (
	"context"

	"github.com/custodia-labs/timexy/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/timexy/internal/adapters/driven/tokenizer/rule"
	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/core/services"
)

func realAnnotators(lang string) (driving.AnnotationService, error) {
	return services.NewAnnotator(lang, services.WithTokenizer(rule.New()))
}

func newPorts() *Ports {
	return &Ports{
		Annotators: realAnnotators,
		Config:     services.NewConfigService(memory.NewConfigStore()),
		Document:   services.NewDocumentService(memory.NewDocumentStore()),
	}
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	err       error
}

func (m *mockDocumentService) Save(_ context.Context, _ *domain.Document) error {
	return m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}
