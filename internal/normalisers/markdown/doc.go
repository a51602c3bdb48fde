// Package markdown provides a Normaliser for Markdown documents.
package markdown
