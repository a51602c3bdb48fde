package domain

import (
	"fmt"
	"time"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueNone     ValueKind = iota // No temporal value (foreign annotations)
	ValueDate                      // A calendar date
	ValueDuration                  // A quantity + unit duration
)

var valueKindNames = [...]string{
	ValueNone:     "none",
	ValueDate:     "date",
	ValueDuration: "duration",
}

// String returns the name of the kind.
func (k ValueKind) String() string {
	if int(k) >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// ParseValueKind converts a name produced by String back to a ValueKind.
func ParseValueKind(s string) (ValueKind, bool) {
	for k, name := range valueKindNames {
		if name == s {
			return ValueKind(k), true
		}
	}
	return ValueNone, false
}

// Unit is an ISO-8601 duration unit designator.
type Unit string

const (
	UnitYear  Unit = "Y"
	UnitMonth Unit = "M"
	UnitWeek  Unit = "W"
	UnitDay   Unit = "D"
)

// Value is a normalised temporal value: a date or a duration.
type Value struct {
	Kind ValueKind

	// Date is set when Kind is ValueDate.
	Date time.Time

	// Quantity and Unit are set when Kind is ValueDuration.
	// Quantity keeps digit strings verbatim ("048" stays "048").
	Quantity string
	Unit     Unit
}

// DateValue returns a Value holding a calendar date.
func DateValue(t time.Time) Value {
	return Value{Kind: ValueDate, Date: t}
}

// DurationValue returns a Value holding a duration.
func DurationValue(quantity string, unit Unit) Value {
	return Value{Kind: ValueDuration, Quantity: quantity, Unit: unit}
}

// Period returns the ISO-8601 period for a duration, e.g. "P6Y".
func (v Value) Period() string {
	if v.Kind != ValueDuration {
		return ""
	}
	return "P" + v.Quantity + string(v.Unit)
}

// Span is a contiguous token range with derived character offsets.
// Spans produced by recognizers are candidates until the reconciler
// inserts them into a document's annotation set.
type Span struct {
	// Start and End are character offsets into the document text.
	Start int
	End   int

	// TokenStart and TokenEnd are token indices, half-open.
	TokenStart int
	TokenEnd   int

	// Label is the category tag, e.g. "timexy".
	Label string

	// KBID is the serialised value, e.g. TIMEX3 type="DURATION" value="P6Y".
	KBID string

	// Value is the structured temporal value.
	Value Value

	// Text is the covered document text.
	Text string
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	return s.TokenEnd - s.TokenStart
}

// Overlaps reports whether two spans share any character.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && s.End > o.Start
}

// String returns a debug representation, e.g. timexy("Feb 1990")[9:17].
func (s Span) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", s.Label, s.Text, s.Start, s.End)
}
