package normalisers

import (
	"context"
	"sort"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Registry selects a normaliser by MIME type.
type Registry struct {
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a normaliser. Later registrations win priority ties.
func (r *Registry) Register(n driven.Normaliser) {
	r.normalisers = append(r.normalisers, n)
}

// Select returns the highest priority normaliser for mimeType, or nil.
func (r *Registry) Select(mimeType string) driven.Normaliser {
	var best driven.Normaliser
	for _, n := range r.normalisers {
		if !supports(n, mimeType) {
			continue
		}
		if best == nil || n.Priority() >= best.Priority() {
			best = n
		}
	}
	return best
}

// Normalise runs the matching normaliser over raw. Documents with no
// matching normaliser pass through unchanged.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	n := r.Select(raw.MIMEType)
	if n == nil {
		return string(raw.Content), nil
	}
	return n.Normalise(ctx, raw)
}

// MIMETypes returns every MIME type some normaliser handles, sorted.
func (r *Registry) MIMETypes() []string {
	seen := make(map[string]struct{})
	for _, n := range r.normalisers {
		for _, m := range n.SupportedMIMETypes() {
			seen[m] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for m := range seen {
		types = append(types, m)
	}
	sort.Strings(types)
	return types
}

func supports(n driven.Normaliser, mimeType string) bool {
	for _, m := range n.SupportedMIMETypes() {
		if m == mimeType {
			return true
		}
	}
	return false
}
