package mcp

import (
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Store holds the document that is served.
	Store driving.DocumentStore

	// Exporter encodes the document and its sections.
	Exporter driving.DocumentExporter

	// Preview is optional; without it the preview tool returns an empty model.
	Preview driving.PreviewRenderer
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Store == nil {
		return ErrMissingStore
	}
	if p.Exporter == nil {
		return ErrMissingExporter
	}
	return nil
}
