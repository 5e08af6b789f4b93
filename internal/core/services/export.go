package services

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// Ensure Exporter implements the interface.
var _ driving.DocumentExporter = (*Exporter)(nil)

// Exporter encodes documents for the export command.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export encodes doc. JSON output uses the seed file layout.
func (e *Exporter) Export(doc domain.Resume, format domain.ExportFormat) ([]byte, error) {
	switch format {
	case domain.ExportFormatJSON:
		data, err := json.MarshalIndent(normalise(doc), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case domain.ExportFormatTOML:
		data, err := toml.Marshal(normalise(doc))
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// normalise replaces nil lists with empty ones so encoders emit [] rather
// than null, which the seed schema rejects.
func normalise(doc domain.Resume) domain.Resume {
	out := doc.Clone()
	if out.Skills == nil {
		out.Skills = []domain.Skill{}
	}
	if out.Experience == nil {
		out.Experience = []domain.Experience{}
	}
	for i := range out.Experience {
		if out.Experience[i].Highlights == nil {
			out.Experience[i].Highlights = []string{}
		}
	}
	if out.Education == nil {
		out.Education = []domain.Education{}
	}
	if out.Projects == nil {
		out.Projects = []domain.Project{}
	}
	if out.Certifications == nil {
		out.Certifications = []domain.Certification{}
	}
	return out
}
