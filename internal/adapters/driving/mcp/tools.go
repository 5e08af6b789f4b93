package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// ListSectionsInput is the input schema for the list_sections tool.
type ListSectionsInput struct{}

// ListSectionsOutput is the output schema for the list_sections tool.
type ListSectionsOutput struct {
	Revision uint64          `json:"revision"`
	Sections []SectionOutput `json:"sections"`
}

// SectionOutput describes one section and how many records it holds.
type SectionOutput struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
	URI   string `json:"uri"`
}

// PreviewInput is the input schema for the preview tool.
type PreviewInput struct {
	Section string `json:"section,omitempty" jsonschema:"only return this section (skills, experience, education, projects or certifications)"`
}

// PreviewOutput is the output schema for the preview tool.
type PreviewOutput struct {
	Name     string                 `json:"name"`
	Title    string                 `json:"title"`
	Contacts []string               `json:"contacts,omitempty"`
	Summary  string                 `json:"summary,omitempty"`
	Skills   []SkillGroupOutput     `json:"skills,omitempty"`
	Sections []PreviewSectionOutput `json:"sections,omitempty"`
}

// SkillGroupOutput is one skill category.
type SkillGroupOutput struct {
	Category string        `json:"category"`
	Skills   []SkillOutput `json:"skills"`
}

// SkillOutput is one skill and its level.
type SkillOutput struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// PreviewSectionOutput is one rendered section.
type PreviewSectionOutput struct {
	Title   string               `json:"title"`
	Entries []PreviewEntryOutput `json:"entries"`
}

// PreviewEntryOutput is one rendered record.
type PreviewEntryOutput struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Meta       string   `json:"meta,omitempty"`
	Body       string   `json:"body,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sections",
		Description: "List the resume sections with their record counts",
	}, s.handleListSections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview",
		Description: "Return the resume as laid out by the live preview",
	}, s.handlePreview)
}

// handleListSections handles the list_sections tool invocation.
func (s *Server) handleListSections(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListSectionsInput,
) (*mcp.CallToolResult, ListSectionsOutput, error) {
	doc := s.ports.Store.Get()

	output := ListSectionsOutput{
		Revision: s.ports.Store.Revision(),
		Sections: make([]SectionOutput, 0, len(domain.AllSections())),
	}
	for _, section := range domain.AllSections() {
		output.Sections = append(output.Sections, SectionOutput{
			Key:   section.String(),
			Label: section.Label(),
			Count: doc.Count(section),
			URI:   uriScheme + "sections/" + section.String(),
		})
	}

	return nil, output, nil
}

// handlePreview handles the preview tool invocation.
func (s *Server) handlePreview(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PreviewInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	if s.ports.Preview == nil {
		return nil, PreviewOutput{}, nil
	}

	var only domain.Section
	if input.Section != "" {
		only = domain.Section(input.Section)
		if !only.IsCollection() {
			return nil, PreviewOutput{}, domain.ErrInvalidInput
		}
	}

	model := s.ports.Preview.Project(s.ports.Store.Get())

	output := PreviewOutput{
		Name:    model.Header.Name,
		Title:   model.Header.Title,
		Summary: model.Summary,
	}
	for _, c := range model.Header.Contacts {
		output.Contacts = append(output.Contacts, c.Value)
	}

	if only == "" || only == domain.SectionSkills {
		for _, g := range model.SkillGroups {
			group := SkillGroupOutput{Category: g.Category}
			for _, sk := range g.Skills {
				group.Skills = append(group.Skills, SkillOutput{Name: sk.Name, Level: sk.Level})
			}
			output.Skills = append(output.Skills, group)
		}
	}

	for _, ps := range model.Sections {
		if only != "" && ps.Section != only {
			continue
		}
		section := PreviewSectionOutput{Title: ps.Title, Entries: make([]PreviewEntryOutput, len(ps.Entries))}
		for i, e := range ps.Entries {
			section.Entries[i] = PreviewEntryOutput{
				Heading:    e.Heading,
				Subheading: e.Subheading,
				Meta:       e.Meta,
				Body:       e.Body,
				Bullets:    e.Bullets,
			}
		}
		output.Sections = append(output.Sections, section)
	}

	return nil, output, nil
}
