package services

import (
	"strings"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// Ensure PreviewRenderer implements the interface.
var _ driving.PreviewRenderer = (*PreviewRenderer)(nil)

const metaSeparator = " · "

// PreviewRenderer projects a resume into the live preview model.
type PreviewRenderer struct{}

// NewPreviewRenderer creates a preview renderer.
func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{}
}

// Project builds the render model for doc. It reads nothing but its input.
func (r *PreviewRenderer) Project(doc domain.Resume) domain.RenderModel {
	model := domain.RenderModel{
		Header: domain.PreviewHeader{
			Name:     doc.Profile.Name,
			Title:    doc.Profile.Title,
			Contacts: contacts(doc.Profile),
		},
		Summary:     doc.Profile.Summary,
		SkillGroups: groupSkills(doc.Skills),
	}

	if len(doc.Experience) > 0 {
		model.Sections = append(model.Sections, experienceSection(doc.Experience))
	}
	if len(doc.Projects) > 0 {
		model.Sections = append(model.Sections, projectSection(doc.Projects))
	}
	if len(doc.Education) > 0 {
		model.Sections = append(model.Sections, educationSection(doc.Education))
	}
	if len(doc.Certifications) > 0 {
		model.Sections = append(model.Sections, certificationSection(doc.Certifications))
	}

	return model
}

func contacts(p domain.Profile) []domain.ContactLine {
	candidates := []domain.ContactLine{
		{Kind: domain.ContactEmail, Value: p.Email},
		{Kind: domain.ContactPhone, Value: p.Phone},
		{Kind: domain.ContactLocation, Value: p.Location},
		{Kind: domain.ContactWebsite, Value: p.Website},
		{Kind: domain.ContactGitHub, Value: p.GitHub},
		{Kind: domain.ContactLinkedIn, Value: p.LinkedIn},
		{Kind: domain.ContactTwitter, Value: p.Twitter},
	}

	var out []domain.ContactLine
	for _, c := range candidates {
		if c.Value != "" {
			out = append(out, c)
		}
	}
	return out
}

// groupSkills keeps categories in first-seen order and skills in document
// order within each category.
func groupSkills(skills []domain.Skill) []domain.SkillGroup {
	var groups []domain.SkillGroup
	index := make(map[string]int)

	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, domain.SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

func experienceSection(items []domain.Experience) domain.PreviewSection {
	section := domain.PreviewSection{Section: domain.SectionExperience, Title: "Work Experience"}
	for _, e := range items {
		section.Entries = append(section.Entries, domain.PreviewEntry{
			Heading:    e.Role,
			Subheading: e.Company,
			Meta:       joinNonEmpty(e.Period, e.Location),
			Body:       e.Description,
			Bullets:    nonEmpty(e.Highlights),
		})
	}
	return section
}

func projectSection(items []domain.Project) domain.PreviewSection {
	section := domain.PreviewSection{Section: domain.SectionProjects, Title: "Projects"}
	for _, p := range items {
		section.Entries = append(section.Entries, domain.PreviewEntry{
			Heading:    p.Name,
			Subheading: p.Tech,
			Meta:       joinNonEmpty(p.Period, p.Link),
			Body:       p.Description,
		})
	}
	return section
}

func educationSection(items []domain.Education) domain.PreviewSection {
	section := domain.PreviewSection{Section: domain.SectionEducation, Title: "Education"}
	for _, e := range items {
		gpa := ""
		if e.GPA != "" {
			gpa = "GPA: " + e.GPA
		}
		section.Entries = append(section.Entries, domain.PreviewEntry{
			Heading:    e.Degree,
			Subheading: e.Institution,
			Meta:       joinNonEmpty(e.Period, e.Location, gpa),
			Body:       e.Description,
		})
	}
	return section
}

func certificationSection(items []domain.Certification) domain.PreviewSection {
	section := domain.PreviewSection{Section: domain.SectionCertifications, Title: "Certifications"}
	for _, c := range items {
		body := ""
		if c.CredentialID != "" {
			body = "ID: " + c.CredentialID
		}
		section.Entries = append(section.Entries, domain.PreviewEntry{
			Heading:    c.Name,
			Subheading: joinNonEmpty(c.Issuer, c.Year),
			Body:       body,
		})
	}
	return section
}

func joinNonEmpty(parts ...string) string {
	return strings.Join(nonEmpty(parts), metaSeparator)
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
