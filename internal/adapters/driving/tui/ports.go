// Package tui provides the interactive terminal dashboard for resumedesk.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Store holds the document being edited.
	Store driving.DocumentStore

	// Editors, one per section.
	Profile        driving.ProfileEditor
	Skills         driving.SkillEditor
	Experience     driving.ExperienceEditor
	Education      driving.EducationEditor
	Projects       driving.ProjectEditor
	Certifications driving.CertificationEditor

	// Preview projects the document for the preview pane.
	Preview driving.PreviewRenderer

	// Access authenticates users on the login view.
	Access driving.AccessGate

	// Save runs the save hook.
	Save driving.SaveService

	// Settings is optional; when set, preview preferences are read from it.
	Settings driving.SettingsService
}

// NewPorts creates a Ports aggregate with the store, access gate and
// preview renderer set. Editors and the save service are assigned by the
// caller.
func NewPorts(
	store driving.DocumentStore,
	access driving.AccessGate,
	preview driving.PreviewRenderer,
) *Ports {
	return &Ports{
		Store:   store,
		Access:  access,
		Preview: preview,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Store == nil {
		return ErrMissingDocumentStore
	}
	if p.Access == nil {
		return ErrMissingAccessGate
	}
	if p.Preview == nil {
		return ErrMissingPreviewRenderer
	}
	if p.Save == nil {
		return ErrMissingSaveService
	}
	if p.Profile == nil || p.Skills == nil || p.Experience == nil ||
		p.Education == nil || p.Projects == nil || p.Certifications == nil {
		return ErrMissingEditor
	}
	return nil
}
