package driven

import (
	"context"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// Connector fetches text documents from a location.
type Connector interface {
	// Validate checks the location exists and is readable.
	Validate(ctx context.Context) error

	// FullSync reads every document under the location.
	// Both channels are closed when the walk completes.
	FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Watch listens for real-time changes.
	// The returned channel is closed when ctx is cancelled or Close is called.
	Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error)

	// Close releases resources.
	Close() error
}
