// Package recognizers assembles the recognizers that propose temporal
// spans for a document.
package recognizers

import (
	"context"
	"fmt"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.RecognizerPipeline = (*Pipeline)(nil)

// Pipeline runs multiple Recognizers in order.
// It implements the RecognizerPipeline interface.
type Pipeline struct {
	recognizers []driven.Recognizer
}

// NewPipeline creates a new pipeline with the given recognizers.
// Recognizers are executed in the order provided.
func NewPipeline(recognizers ...driven.Recognizer) *Pipeline {
	return &Pipeline{
		recognizers: recognizers,
	}
}

// Candidates runs every recognizer over doc and returns their candidates,
// one group per recognizer in pipeline order.
func (p *Pipeline) Candidates(ctx context.Context, doc *domain.Document, cfg domain.Config) ([][]domain.Span, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	groups := make([][]domain.Span, 0, len(p.recognizers))
	for _, rec := range p.recognizers {
		spans, err := rec.Recognize(ctx, doc, cfg)
		if err != nil {
			return nil, fmt.Errorf("recognizer %s: %w", rec.Name(), err)
		}
		groups = append(groups, spans)
	}

	return groups, nil
}

// Names returns the recognizer names in pipeline order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.recognizers))
	for i, rec := range p.recognizers {
		names[i] = rec.Name()
	}
	return names
}

// Add appends a recognizer to the pipeline.
func (p *Pipeline) Add(rec driven.Recognizer) {
	p.recognizers = append(p.recognizers, rec)
}

// Len returns the number of recognizers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.recognizers)
}
