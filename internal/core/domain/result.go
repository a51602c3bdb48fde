package domain

// RejectReason explains why the reconciler discarded a candidate.
type RejectReason int

const (
	// RejectForeignLabel means the candidate touches a token annotated
	// with another label and overwriting is disabled.
	RejectForeignLabel RejectReason = iota

	// RejectLongerExists means a longer span with the same label already
	// overlaps the candidate.
	RejectLongerExists

	// RejectInsertFailed means the annotation set refused the candidate.
	RejectInsertFailed

	// RejectReplaced means the candidate was inserted and later removed
	// in favour of a longer one during the same call.
	RejectReplaced
)

// String returns a short description of the reason.
func (r RejectReason) String() string {
	switch r {
	case RejectForeignLabel:
		return "foreign label"
	case RejectLongerExists:
		return "longer span exists"
	case RejectInsertFailed:
		return "insert failed"
	case RejectReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Rejection records a discarded candidate.
type Rejection struct {
	Span   Span
	Reason RejectReason
}

// AnnotationResult summarises one annotation call.
type AnnotationResult struct {
	// Document is the annotated document.
	Document *Document

	// Accepted lists the spans inserted during this call that are still
	// present afterwards, ordered by position.
	Accepted []Span

	// Rejected lists candidates the reconciler discarded.
	Rejected []Rejection
}
