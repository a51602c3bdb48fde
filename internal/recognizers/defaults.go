package recognizers

import (
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/languages"
	"github.com/custodia-labs/timexy/internal/recognizers/date"
	"github.com/custodia-labs/timexy/internal/recognizers/duration"
)

// DefaultOrder is the order candidates are reconciled in: dates first,
// then durations.
var DefaultOrder = []string{date.Name, duration.Name}

// RegisterDefaults registers all built-in recognizers with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(date.Name, buildDate)
	r.Register(duration.Name, buildDuration)
}

func buildDate(table *languages.Table) (driven.Recognizer, error) {
	return date.New(table), nil
}

func buildDuration(table *languages.Table) (driven.Recognizer, error) {
	return duration.New(table), nil
}
