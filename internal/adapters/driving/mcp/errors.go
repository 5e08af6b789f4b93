// Package mcp provides an MCP (Model Context Protocol) server adapter for resumedesk.
// It lets AI assistants read the resume and its preview without editing it.
package mcp

import "errors"

var (
	// ErrMissingStore is returned when the document store is not provided.
	ErrMissingStore = errors.New("mcp: document store is required")

	// ErrMissingExporter is returned when the exporter is not provided.
	ErrMissingExporter = errors.New("mcp: exporter is required")
)
