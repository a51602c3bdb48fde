// Package html provides a Normaliser implementation for HTML documents.
// It extracts readable text content from HTML, dropping scripts and styles
// and decoding entities so dates written as markup still annotate.
package html
