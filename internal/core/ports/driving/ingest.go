package driving

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// IngestStatus counts the outcome of an ingest run.
type IngestStatus struct {
	DocumentsProcessed int
	DocumentsDeleted   int
	ErrorCount         int
}

// ResultHandler receives each document annotated during ingest.
type ResultHandler func(uri string, result *domain.AnnotationResult)

// IngestService annotates documents fetched by a connector.
type IngestService interface {
	// Ingest annotates every document the connector yields in a full sync.
	Ingest(ctx context.Context, conn driven.Connector) (*IngestStatus, error)

	// Watch annotates documents as the connector reports changes, until
	// ctx is cancelled.
	Watch(ctx context.Context, conn driven.Connector) error
}
