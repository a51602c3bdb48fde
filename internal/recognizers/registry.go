package recognizers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/languages"
)

// BuilderFunc creates a Recognizer for a language's rule table.
type BuilderFunc func(table *languages.Table) (driven.Recognizer, error)

// Registry maps recognizer names to their builders.
// It allows the annotator to assemble its pipeline by name.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new recognizer registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a recognizer builder to the registry.
// Name should be unique and match the recognizer's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a recognizer by name for the given table.
// Returns error if the recognizer name is not registered.
func (r *Registry) Build(name string, table *languages.Table) (driven.Recognizer, error) {
	if !r.Has(name) {
		return nil, fmt.Errorf("unknown recognizer %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return r.builders[name](table)
}

// BuildPipeline creates a pipeline running the named recognizers in order.
func (r *Registry) BuildPipeline(table *languages.Table, names ...string) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		rec, err := r.Build(name, table)
		if err != nil {
			return nil, err
		}
		p.Add(rec)
	}
	return p, nil
}

// Has returns true if a recognizer with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered recognizer names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
