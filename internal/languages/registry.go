package languages

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// builders maps language identifiers to table constructors.
var builders = map[string]func() *Table{
	"en": english,
	"de": german,
	"fr": french,
}

// tables is populated once at process start.
var tables = buildAll()

func buildAll() map[string]*Table {
	out := make(map[string]*Table, len(builders))
	for id, build := range builders {
		t := build()
		if t.ID != id {
			panic(fmt.Sprintf("languages: table %q registered as %q", t.ID, id))
		}
		if err := t.compile(); err != nil {
			panic(err)
		}
		out[id] = t
	}
	return out
}

// Lookup returns the table for a language identifier.
func Lookup(id string) (*Table, error) {
	t, ok := tables[id]
	if !ok {
		return nil, &domain.UnsupportedLanguageError{Language: id}
	}
	return t, nil
}

// MustLookup is like Lookup but panics for unknown languages.
func MustLookup(id string) *Table {
	t, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return t
}

// IsSupported reports whether a table exists for id.
func IsSupported(id string) bool {
	_, ok := tables[id]
	return ok
}

// Supported returns the registered language identifiers in sorted order.
func Supported() []string {
	ids := make([]string, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
