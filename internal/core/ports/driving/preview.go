package driving

import "github.com/custodia-labs/resumedesk/internal/core/domain"

// PreviewRenderer projects a document into the model drawn by the preview.
// Project is pure and keeps no state between calls.
type PreviewRenderer interface {
	Project(doc domain.Resume) domain.RenderModel
}

// DocumentExporter serialises a document for the export command.
type DocumentExporter interface {
	// Export encodes doc in the given format.
	// Returns domain.ErrUnsupportedFormat for unknown formats.
	Export(doc domain.Resume, format domain.ExportFormat) ([]byte, error)
}
