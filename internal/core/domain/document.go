package domain

import (
	"sort"
	"time"
)

// Token is a unit of text produced by a tokenizer.
// Start and End are character offsets into the document text.
type Token struct {
	// Text is the token text as it appears in the document.
	Text string

	// Start is the character offset of the first rune (inclusive).
	Start int

	// End is the character offset after the last rune (exclusive).
	End int

	// IsDigit is true when every rune of Text is a decimal digit.
	IsDigit bool
}

// Document is the unit of work for the annotator.
// The annotation set is mutated in place; a document must not be shared
// between goroutines while it is being annotated.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, "-" for stdin, etc).
	URI string

	// Language is the identifier of the rule table used to annotate it.
	Language string

	// Text is the raw document text.
	Text string

	// Tokens is the ordered token sequence covering Text.
	Tokens []Token

	// Annotations holds the spans overlaid on Tokens. It may already
	// carry annotations produced by other recognizers.
	Annotations *AnnotationSet

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was first annotated.
	CreatedAt time.Time

	// UpdatedAt is when the document was last annotated.
	UpdatedAt time.Time
}

// NewDocument creates a document with an empty annotation set sized for tokens.
func NewDocument(text string, tokens []Token) *Document {
	return &Document{
		Text:        text,
		Tokens:      tokens,
		Annotations: NewAnnotationSet(len(tokens)),
	}
}

// TokenRange maps the character span [start, end) onto the half-open token
// range it covers. Both offsets must fall on token boundaries.
func (d *Document) TokenRange(start, end int) (int, int, error) {
	if start < 0 || end <= start {
		return 0, 0, &SpanAlignmentError{Start: start, End: end, Reason: "empty or negative span"}
	}

	first := sort.Search(len(d.Tokens), func(i int) bool { return d.Tokens[i].Start >= start })
	if first == len(d.Tokens) || d.Tokens[first].Start != start {
		return 0, 0, &SpanAlignmentError{Start: start, End: end, Reason: "start is not a token boundary"}
	}

	last := sort.Search(len(d.Tokens), func(i int) bool { return d.Tokens[i].End >= end })
	if last == len(d.Tokens) || d.Tokens[last].End != end || last < first {
		return 0, 0, &SpanAlignmentError{Start: start, End: end, Reason: "end is not a token boundary"}
	}

	return first, last + 1, nil
}

// Slice returns the text between two character offsets.
func (d *Document) Slice(start, end int) string {
	if start < 0 || end <= start {
		return ""
	}

	from, to := len(d.Text), len(d.Text)
	n := 0
	for i := range d.Text {
		if n == start {
			from = i
		}
		if n == end {
			to = i
			break
		}
		n++
	}
	if from > to {
		return ""
	}
	return d.Text[from:to]
}

// NewSpan builds a span over the token range [tokenStart, tokenEnd).
func (d *Document) NewSpan(tokenStart, tokenEnd int, label string, value Value) (Span, error) {
	if tokenStart < 0 || tokenEnd > len(d.Tokens) || tokenEnd <= tokenStart {
		return Span{}, &SpanAlignmentError{Start: tokenStart, End: tokenEnd, Reason: "token range out of bounds"}
	}

	start := d.Tokens[tokenStart].Start
	end := d.Tokens[tokenEnd-1].End
	return Span{
		Start:      start,
		End:        end,
		TokenStart: tokenStart,
		TokenEnd:   tokenEnd,
		Label:      label,
		Value:      value,
		Text:       d.Slice(start, end),
	}, nil
}

// Entities returns the document's annotations ordered by position.
func (d *Document) Entities() []Span {
	if d.Annotations == nil {
		return nil
	}
	return d.Annotations.Spans()
}
