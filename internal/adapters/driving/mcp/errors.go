// Package mcp provides an MCP (Model Context Protocol) server adapter for timexy.
// It lets AI assistants annotate text and read stored annotations.
package mcp

import "errors"

// ErrMissingAnnotator is returned when no annotator factory is provided.
var ErrMissingAnnotator = errors.New("mcp: annotator is required")
