// Package normalisers turns raw connector documents into the plain text the
// annotator tokenizes. Each normaliser knows how to strip the markup of one
// family of MIME types; the Registry picks the best match per document.
package normalisers
