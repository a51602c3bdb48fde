package domain

import "sort"

// noOwner marks a token that carries no annotation.
const noOwner = -1

// AnnotationSet is the set of non-overlapping spans overlaid on a
// document's tokens. Spans are keyed by their first token, and every token
// records the span that owns it, so range lookups never scan the whole set.
//
// An AnnotationSet is not safe for concurrent use.
type AnnotationSet struct {
	owner []int
	spans map[int]Span
}

// NewAnnotationSet creates an empty set for a document of tokenCount tokens.
func NewAnnotationSet(tokenCount int) *AnnotationSet {
	owner := make([]int, tokenCount)
	for i := range owner {
		owner[i] = noOwner
	}
	return &AnnotationSet{
		owner: owner,
		spans: make(map[int]Span),
	}
}

// TokenCount returns the number of tokens the set covers.
func (a *AnnotationSet) TokenCount() int {
	return len(a.owner)
}

// Len returns the number of spans in the set.
func (a *AnnotationSet) Len() int {
	return len(a.spans)
}

// Spans returns all spans ordered by first token.
func (a *AnnotationSet) Spans() []Span {
	keys := make([]int, 0, len(a.spans))
	for k := range a.spans {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]Span, 0, len(keys))
	for _, k := range keys {
		out = append(out, a.spans[k])
	}
	return out
}

// At returns the span owning the given token.
func (a *AnnotationSet) At(token int) (Span, bool) {
	if token < 0 || token >= len(a.owner) || a.owner[token] == noOwner {
		return Span{}, false
	}
	return a.spans[a.owner[token]], true
}

// Labels returns the distinct labels carried by tokens in [start, end),
// in token order. An empty result means no token in the range is annotated.
func (a *AnnotationSet) Labels(start, end int) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, s := range a.Overlapping(start, end) {
		if !seen[s.Label] {
			seen[s.Label] = true
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// Overlapping returns the spans owning at least one token in [start, end).
func (a *AnnotationSet) Overlapping(start, end int) []Span {
	start, end = a.clamp(start, end)

	var out []Span
	last := noOwner
	for i := start; i < end; i++ {
		key := a.owner[i]
		if key == noOwner || key == last {
			continue
		}
		last = key
		out = append(out, a.spans[key])
	}
	return out
}

// Within returns the spans lying entirely inside the token window [start, end).
func (a *AnnotationSet) Within(start, end int) []Span {
	start, end = a.clamp(start, end)

	var out []Span
	for _, s := range a.Overlapping(start, end) {
		if s.TokenStart >= start && s.TokenEnd <= end {
			out = append(out, s)
		}
	}
	return out
}

// Insert adds a span. The span must lie inside the document and must not
// share a token with any span already in the set.
func (a *AnnotationSet) Insert(s Span) error {
	if s.TokenStart < 0 || s.TokenEnd > len(a.owner) || s.TokenEnd <= s.TokenStart {
		return &SpanAlignmentError{Start: s.TokenStart, End: s.TokenEnd, Reason: "token range out of bounds"}
	}
	for i := s.TokenStart; i < s.TokenEnd; i++ {
		if a.owner[i] != noOwner {
			return &SpanAlignmentError{Start: s.TokenStart, End: s.TokenEnd, Reason: "overlaps an existing annotation"}
		}
	}

	for i := s.TokenStart; i < s.TokenEnd; i++ {
		a.owner[i] = s.TokenStart
	}
	a.spans[s.TokenStart] = s
	return nil
}

// Remove deletes the given spans. Spans not present in the set are ignored.
func (a *AnnotationSet) Remove(spans ...Span) {
	for _, s := range spans {
		existing, ok := a.spans[s.TokenStart]
		if !ok || existing.TokenEnd != s.TokenEnd {
			continue
		}
		for i := existing.TokenStart; i < existing.TokenEnd; i++ {
			a.owner[i] = noOwner
		}
		delete(a.spans, s.TokenStart)
	}
}

// Clone returns an independent copy of the set.
func (a *AnnotationSet) Clone() *AnnotationSet {
	c := &AnnotationSet{
		owner: make([]int, len(a.owner)),
		spans: make(map[int]Span, len(a.spans)),
	}
	copy(c.owner, a.owner)
	for k, v := range a.spans {
		c.spans[k] = v
	}
	return c
}

func (a *AnnotationSet) clamp(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(a.owner) {
		end = len(a.owner)
	}
	if end < start {
		end = start
	}
	return start, end
}
