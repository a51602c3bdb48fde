package languages

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// Fixture is a literal test string for a rule and the character offsets
// of the date the rule must find in it.
type Fixture struct {
	Text  string
	Start int
	End   int
}

// Rule pairs a date regular expression with the strptime template its
// matches are parsed with.
type Rule struct {
	// Pattern is an RE2 regular expression.
	Pattern string

	// Template is a strptime template, e.g. "%d.%m.%Y". %b and %B stand
	// for written month names.
	Template string

	// NotAfterDigit rejects matches that start right after an ASCII digit.
	NotAfterDigit bool

	// Fixtures are the literal test strings for this rule.
	Fixtures []Fixture

	re *regexp.Regexp
}

// Regexp returns the compiled pattern.
func (r *Rule) Regexp() *regexp.Regexp {
	return r.re
}

// HasMonthName reports whether the template contains a written month placeholder.
func (r *Rule) HasMonthName() bool {
	return HasMonthName(r.Template)
}

// HasMonthName reports whether a strptime template contains %b or %B.
func HasMonthName(template string) bool {
	return strings.Contains(template, "%b") || strings.Contains(template, "%B")
}

// UnitWords lists the words that denote one duration unit.
type UnitWords struct {
	Unit  domain.Unit
	Words []string
}

// MonthName is a month name variant with its 1-based month index.
type MonthName struct {
	Index int
	Name  string
}

// Table is the immutable rule data for one language.
type Table struct {
	// ID is the language identifier, e.g. "en".
	ID string

	// Tag drives language-aware case mapping.
	Tag language.Tag

	// Months holds the name variants of each month, January first.
	Months [][]string

	// Units lists unit words in matching order.
	Units []UnitWords

	// NumberWords holds spelled-out numbers; the index is the value.
	NumberWords []string

	// Rules are tried in declaration order.
	Rules []Rule

	byLength []MonthName
}

// Lower lower-cases s using the table's language.
func (t *Table) Lower(s string) string {
	return cases.Lower(t.Tag).String(s)
}

// Upper upper-cases s using the table's language.
func (t *Table) Upper(s string) string {
	return cases.Upper(t.Tag).String(s)
}

// MonthNamePattern returns an alternation of every month name variant,
// first as written and then upper-cased, for embedding in rule patterns.
func (t *Table) MonthNamePattern() string {
	var variants []string
	for _, names := range t.Months {
		for _, name := range names {
			variants = append(variants, regexp.QuoteMeta(name))
		}
	}
	for _, names := range t.Months {
		for _, name := range names {
			variants = append(variants, regexp.QuoteMeta(t.Upper(name)))
		}
	}
	return strings.Join(variants, "|")
}

// MonthNameToIndex returns every (month index, variant) pair in table order.
// Callers substituting month names must try longer variants first; see
// MonthNamesByLength.
func (t *Table) MonthNameToIndex() []MonthName {
	var pairs []MonthName
	for i, names := range t.Months {
		for _, name := range names {
			pairs = append(pairs, MonthName{Index: i + 1, Name: name})
		}
	}
	return pairs
}

// MonthNamesByLength returns the month variants ordered longest first.
// Variants of equal length keep table order.
func (t *Table) MonthNamesByLength() []MonthName {
	out := make([]MonthName, len(t.byLength))
	copy(out, t.byLength)
	return out
}

// NumberValue returns the value of a spelled-out number. The comparison
// is done on the lower-cased word.
func (t *Table) NumberValue(word string) (int, bool) {
	lower := t.Lower(word)
	for i, w := range t.NumberWords {
		if lower == t.Lower(w) {
			return i, true
		}
	}
	return 0, false
}

// compile validates the table and compiles every rule.
func (t *Table) compile() error {
	if len(t.Months) != 12 {
		return fmt.Errorf("language %s: expected 12 months, got %d", t.ID, len(t.Months))
	}
	for i := range t.Rules {
		re, err := regexp.Compile(t.Rules[i].Pattern)
		if err != nil {
			return fmt.Errorf("language %s: rule %q: %w", t.ID, t.Rules[i].Template, err)
		}
		t.Rules[i].re = re
	}
	t.byLength = t.MonthNameToIndex()
	sort.SliceStable(t.byLength, func(i, j int) bool {
		return runeLen(t.byLength[i].Name) > runeLen(t.byLength[j].Name)
	})
	return nil
}

// runeLen is the length used to order month variants.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
