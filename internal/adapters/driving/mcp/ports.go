package mcp

import (
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
)

// AnnotatorFactory builds an annotator for a language identifier.
type AnnotatorFactory func(language string) (driving.AnnotationService, error)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Annotators builds the annotator for each tool call.
	Annotators AnnotatorFactory

	// Config supplies stored defaults. Optional.
	Config driving.ConfigService

	// Document exposes stored documents as resources. Optional.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Annotators == nil {
		return ErrMissingAnnotator
	}
	return nil
}
