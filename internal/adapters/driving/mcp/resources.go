package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

const uriScheme = "resume://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "document",
		Name:        "document",
		Description: "The whole resume in the seed file layout",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{section}",
		Name:        "section",
		Description: "One section of the resume: profile, skills, experience, education, projects or certifications",
		MIMEType:    "application/json",
	}, s.handleSectionResource)
}

// handleDocumentResource returns the current document as JSON.
func (s *Server) handleDocumentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := s.ports.Exporter.Export(s.ports.Store.Get(), domain.ExportFormatJSON)
	if err != nil {
		return nil, fmt.Errorf("exporting document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionResource returns a single section as JSON.
func (s *Server) handleSectionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	section := extractSection(req.Params.URI)
	if !section.IsValid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(sectionData(s.ports.Store.Get(), section), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", section, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSection extracts the section from a URI like resume://sections/{section}.
func extractSection(uri string) domain.Section {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return domain.Section(strings.TrimPrefix(uri, prefix))
}

// sectionData returns the value stored under section. Collections are never
// nil so they encode as [].
func sectionData(doc domain.Resume, section domain.Section) any {
	switch section {
	case domain.SectionProfile:
		return doc.Profile
	case domain.SectionSkills:
		return nonNil(doc.Skills)
	case domain.SectionExperience:
		return nonNil(doc.Experience)
	case domain.SectionEducation:
		return nonNil(doc.Education)
	case domain.SectionProjects:
		return nonNil(doc.Projects)
	case domain.SectionCertifications:
		return nonNil(doc.Certifications)
	default:
		return nil
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
