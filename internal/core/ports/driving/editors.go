package driving

import "github.com/custodia-labs/resumedesk/internal/core/domain"

// Every editor reads the current document from the DocumentStore, computes
// the next one, replaces it when something changed and returns the result.
// Operations on ids that do not exist return the current document unchanged.

// ProfileEditor edits the singleton profile record.
type ProfileEditor interface {
	SetField(field domain.ProfileField, value string) domain.Resume
}

// SkillEditor edits the skills collection.
type SkillEditor interface {
	// Add appends a blank skill and returns its id.
	Add() (domain.Resume, int64)
	Update(id int64, field domain.SkillField, value string) domain.Resume
	// SetLevel sets the level without clamping.
	SetLevel(id int64, level int) domain.Resume
	Remove(id int64) domain.Resume
}

// ExperienceEditor edits the experience collection and the highlights of
// each entry.
type ExperienceEditor interface {
	Add() (domain.Resume, int64)
	Update(id int64, field domain.ExperienceField, value string) domain.Resume
	Remove(id int64) domain.Resume

	// AddHighlight appends an empty highlight.
	AddHighlight(id int64) domain.Resume
	// UpdateHighlight and RemoveHighlight ignore out of range indexes.
	UpdateHighlight(id int64, index int, value string) domain.Resume
	RemoveHighlight(id int64, index int) domain.Resume
}

// EducationEditor edits the education collection.
type EducationEditor interface {
	Add() (domain.Resume, int64)
	Update(id int64, field domain.EducationField, value string) domain.Resume
	Remove(id int64) domain.Resume
}

// ProjectEditor edits the projects collection.
type ProjectEditor interface {
	Add() (domain.Resume, int64)
	Update(id int64, field domain.ProjectField, value string) domain.Resume
	Remove(id int64) domain.Resume
}

// CertificationEditor edits the certifications collection.
type CertificationEditor interface {
	Add() (domain.Resume, int64)
	Update(id int64, field domain.CertificationField, value string) domain.Resume
	Remove(id int64) domain.Resume
}
