package services

import (
	"sort"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/logger"
)

// MaxLenPattern is the longest candidate any rule produces, in tokens.
// Overlap resolution only looks this far either side of a candidate.
const MaxLenPattern = 5

// reconciler merges candidates into an annotation set one at a time.
// Candidates are applied in recognizer order, so the result depends on it.
type reconciler struct {
	set      *domain.AnnotationSet
	cfg      domain.Config
	inserted map[int]domain.Span
	rejected []domain.Rejection
}

func newReconciler(set *domain.AnnotationSet, cfg domain.Config) *reconciler {
	return &reconciler{
		set:      set,
		cfg:      cfg,
		inserted: make(map[int]domain.Span),
	}
}

func (r *reconciler) apply(c domain.Span) {
	labels := r.set.Labels(c.TokenStart, c.TokenEnd)

	if !r.cfg.Overwrite && hasForeignLabel(labels, r.cfg.Label) {
		r.reject(c, domain.RejectForeignLabel)
		return
	}

	if len(labels) == 0 {
		if err := r.set.Insert(c); err != nil {
			logger.Error("Unable to set entity %s with offset (%d,%d), skipping: %v",
				c.Text, c.TokenStart, c.TokenEnd, err)
			r.reject(c, domain.RejectInsertFailed)
			return
		}
		r.inserted[c.TokenStart] = c
		return
	}

	var overlap []domain.Span
	for _, e := range r.set.Within(c.TokenStart-MaxLenPattern, c.TokenEnd+MaxLenPattern) {
		if !e.Overlaps(c) {
			continue
		}
		if e.Label == r.cfg.Label && e.Len() > c.Len() {
			r.reject(c, domain.RejectLongerExists)
			return
		}
		overlap = append(overlap, e)
	}

	// Every span owning one of the candidate's tokens must be in the
	// removal set, otherwise the insert below would fail half way.
	for _, e := range r.set.Overlapping(c.TokenStart, c.TokenEnd) {
		if !containsSpan(overlap, e) {
			err := &domain.SpanAlignmentError{Start: c.TokenStart, End: c.TokenEnd, Reason: "overlaps an annotation outside the search window"}
			logger.Error("Unable to set entity %s with offset (%d,%d), skipping: %v",
				c.Text, c.TokenStart, c.TokenEnd, err)
			r.reject(c, domain.RejectInsertFailed)
			return
		}
	}

	r.set.Remove(overlap...)
	for _, e := range overlap {
		if prev, ok := r.inserted[e.TokenStart]; ok && prev.TokenEnd == e.TokenEnd {
			delete(r.inserted, e.TokenStart)
			r.reject(prev, domain.RejectReplaced)
		}
	}

	if err := r.set.Insert(c); err != nil {
		// Unreachable after the ownership check; restore what was removed.
		for _, e := range overlap {
			_ = r.set.Insert(e)
		}
		logger.Error("Unable to set entity %s with offset (%d,%d), skipping: %v",
			c.Text, c.TokenStart, c.TokenEnd, err)
		r.reject(c, domain.RejectInsertFailed)
		return
	}
	r.inserted[c.TokenStart] = c
}

func (r *reconciler) reject(c domain.Span, reason domain.RejectReason) {
	r.rejected = append(r.rejected, domain.Rejection{Span: c, Reason: reason})
}

// accepted returns the spans inserted by this reconciler that survived,
// ordered by position.
func (r *reconciler) accepted() []domain.Span {
	out := make([]domain.Span, 0, len(r.inserted))
	for _, s := range r.inserted {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TokenStart < out[j].TokenStart })
	return out
}

func hasForeignLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l != label {
			return true
		}
	}
	return false
}

func containsSpan(spans []domain.Span, s domain.Span) bool {
	for _, e := range spans {
		if e.TokenStart == s.TokenStart && e.TokenEnd == s.TokenEnd {
			return true
		}
	}
	return false
}
