// Package domain defines the core entities for timexy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Token: A unit of text with character offsets, supplied by a tokenizer
//   - Document: Text, its tokens and the annotation set overlaid on them
//   - Span: A token range carrying a label and a normalized temporal value
//   - AnnotationSet: Non-overlapping spans indexed by token range
//   - Config: The per-call annotation settings (label, kb id type, overwrite)
//
// # Offsets
//
// All offsets exposed by this package are character (rune) offsets into
// Document.Text, not byte offsets.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
