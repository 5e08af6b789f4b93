package services

import (
	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// Ensure editors implement the interfaces.
var (
	_ driving.ProfileEditor       = (*ProfileEditor)(nil)
	_ driving.SkillEditor         = (*SkillEditor)(nil)
	_ driving.ExperienceEditor    = (*ExperienceEditor)(nil)
	_ driving.EducationEditor     = (*EducationEditor)(nil)
	_ driving.ProjectEditor       = (*ProjectEditor)(nil)
	_ driving.CertificationEditor = (*CertificationEditor)(nil)
)

// editor binds a Collection to the store. Every operation reads the current
// document once and replaces it only when the collection actually changed.
type editor[T any] struct {
	name  string
	store driving.DocumentStore
	ids   *IDSequence
	coll  Collection[T]
}

func newEditor[T any](name string, store driving.DocumentStore, coll Collection[T]) editor[T] {
	return editor[T]{
		name:  name,
		store: store,
		ids:   NewIDSequence(0),
		coll:  coll,
	}
}

func (e editor[T]) add() (domain.Resume, int64) {
	doc := e.store.Get()
	id := e.ids.Next(e.coll.IDs(doc))
	next := e.coll.Add(doc, id)
	logger.Event("add", "collection", e.name, "id", id)
	e.store.Replace(next)
	return next, id
}

func (e editor[T]) update(id int64, patch func(T) T) domain.Resume {
	next, ok := e.coll.Update(e.store.Get(), id, patch)
	if !ok {
		logger.Debug("%s: update ignored, no record with id %d", e.name, id)
		return next
	}
	e.store.Replace(next)
	return next
}

func (e editor[T]) remove(id int64) domain.Resume {
	next, ok := e.coll.Remove(e.store.Get(), id)
	if !ok {
		logger.Debug("%s: remove ignored, no record with id %d", e.name, id)
		return next
	}
	logger.Event("remove", "collection", e.name, "id", id)
	e.store.Replace(next)
	return next
}

func known[F comparable](all []F, f F) bool {
	for _, candidate := range all {
		if candidate == f {
			return true
		}
	}
	return false
}

// ProfileEditor edits the singleton profile.
type ProfileEditor struct {
	store driving.DocumentStore
}

// NewProfileEditor creates a profile editor backed by store.
func NewProfileEditor(store driving.DocumentStore) *ProfileEditor {
	return &ProfileEditor{store: store}
}

// SetField replaces one profile field. Unknown fields are ignored.
func (e *ProfileEditor) SetField(field domain.ProfileField, value string) domain.Resume {
	doc := e.store.Get()
	if !known(domain.AllProfileFields(), field) {
		return doc
	}
	doc.Profile = doc.Profile.With(field, value)
	e.store.Replace(doc)
	return doc
}

// SkillEditor edits the skills list.
type SkillEditor struct {
	editor[domain.Skill]
}

// NewSkillEditor creates a skill editor backed by store.
func NewSkillEditor(store driving.DocumentStore) *SkillEditor {
	return &SkillEditor{newEditor("skills", store, Skills)}
}

// Add appends a blank skill at the default level.
func (e *SkillEditor) Add() (domain.Resume, int64) { return e.add() }

// Update sets one field. A non-numeric level becomes 0.
func (e *SkillEditor) Update(id int64, field domain.SkillField, value string) domain.Resume {
	if !known(domain.AllSkillFields(), field) {
		return e.store.Get()
	}
	return e.update(id, func(s domain.Skill) domain.Skill { return s.With(field, value) })
}

// SetLevel stores level as given.
func (e *SkillEditor) SetLevel(id int64, level int) domain.Resume {
	return e.update(id, func(s domain.Skill) domain.Skill { return s.WithLevel(level) })
}

// Remove deletes a skill.
func (e *SkillEditor) Remove(id int64) domain.Resume { return e.remove(id) }

// ExperienceEditor edits the experience list and nested highlights.
type ExperienceEditor struct {
	editor[domain.Experience]
}

// NewExperienceEditor creates an experience editor backed by store.
func NewExperienceEditor(store driving.DocumentStore) *ExperienceEditor {
	return &ExperienceEditor{newEditor("experience", store, Experiences)}
}

// Add appends a blank entry with no highlights.
func (e *ExperienceEditor) Add() (domain.Resume, int64) { return e.add() }

// Update sets one scalar field.
func (e *ExperienceEditor) Update(id int64, field domain.ExperienceField, value string) domain.Resume {
	if !known(domain.AllExperienceFields(), field) {
		return e.store.Get()
	}
	return e.update(id, func(x domain.Experience) domain.Experience { return x.With(field, value) })
}

// Remove deletes an entry together with its highlights.
func (e *ExperienceEditor) Remove(id int64) domain.Resume { return e.remove(id) }

// AddHighlight appends an empty highlight.
func (e *ExperienceEditor) AddHighlight(id int64) domain.Resume {
	return e.update(id, func(x domain.Experience) domain.Experience {
		next := make([]string, len(x.Highlights), len(x.Highlights)+1)
		copy(next, x.Highlights)
		return x.WithHighlights(append(next, ""))
	})
}

// UpdateHighlight replaces the highlight at index.
func (e *ExperienceEditor) UpdateHighlight(id int64, index int, value string) domain.Resume {
	if !e.highlightInRange(id, index) {
		return e.store.Get()
	}
	return e.update(id, func(x domain.Experience) domain.Experience {
		next := make([]string, len(x.Highlights))
		copy(next, x.Highlights)
		next[index] = value
		return x.WithHighlights(next)
	})
}

// RemoveHighlight deletes the highlight at index.
func (e *ExperienceEditor) RemoveHighlight(id int64, index int) domain.Resume {
	if !e.highlightInRange(id, index) {
		return e.store.Get()
	}
	return e.update(id, func(x domain.Experience) domain.Experience {
		next := make([]string, 0, len(x.Highlights)-1)
		next = append(next, x.Highlights[:index]...)
		next = append(next, x.Highlights[index+1:]...)
		return x.WithHighlights(next)
	})
}

func (e *ExperienceEditor) highlightInRange(id int64, index int) bool {
	x, ok := e.coll.Find(e.store.Get(), id)
	if !ok {
		return false
	}
	if index < 0 || index >= len(x.Highlights) {
		logger.Debug("experience: highlight index %d out of range for id %d", index, id)
		return false
	}
	return true
}

// EducationEditor edits the education list.
type EducationEditor struct {
	editor[domain.Education]
}

// NewEducationEditor creates an education editor backed by store.
func NewEducationEditor(store driving.DocumentStore) *EducationEditor {
	return &EducationEditor{newEditor("education", store, Educations)}
}

// Add appends a blank education entry and returns its id.
func (e *EducationEditor) Add() (domain.Resume, int64) { return e.add() }

// Update sets one field of the education entry with the given id.
// Unknown fields and ids leave the document unchanged.
func (e *EducationEditor) Update(id int64, field domain.EducationField, value string) domain.Resume {
	if !known(domain.AllEducationFields(), field) {
		return e.store.Get()
	}
	return e.update(id, func(x domain.Education) domain.Education { return x.With(field, value) })
}

// Remove deletes the education entry with the given id.
func (e *EducationEditor) Remove(id int64) domain.Resume { return e.remove(id) }

// ProjectEditor edits the projects list.
type ProjectEditor struct {
	editor[domain.Project]
}

// NewProjectEditor creates a project editor backed by store.
func NewProjectEditor(store driving.DocumentStore) *ProjectEditor {
	return &ProjectEditor{newEditor("projects", store, Projects)}
}

// Add appends a blank project and returns its id.
func (e *ProjectEditor) Add() (domain.Resume, int64) { return e.add() }

// Update sets one field of the project with the given id.
// Unknown fields and ids leave the document unchanged.
func (e *ProjectEditor) Update(id int64, field domain.ProjectField, value string) domain.Resume {
	if !known(domain.AllProjectFields(), field) {
		return e.store.Get()
	}
	return e.update(id, func(x domain.Project) domain.Project { return x.With(field, value) })
}

// Remove deletes the project with the given id.
func (e *ProjectEditor) Remove(id int64) domain.Resume { return e.remove(id) }

// CertificationEditor edits the certifications list.
type CertificationEditor struct {
	editor[domain.Certification]
}

// NewCertificationEditor creates a certification editor backed by store.
func NewCertificationEditor(store driving.DocumentStore) *CertificationEditor {
	return &CertificationEditor{newEditor("certifications", store, Certifications)}
}

// Add appends a blank certification and returns its id.
func (e *CertificationEditor) Add() (domain.Resume, int64) { return e.add() }

// Update sets one field of the certification with the given id.
// Unknown fields and ids leave the document unchanged.
func (e *CertificationEditor) Update(id int64, field domain.CertificationField, value string) domain.Resume {
	if !known(domain.AllCertificationFields(), field) {
		return e.store.Get()
	}
	return e.update(id, func(x domain.Certification) domain.Certification { return x.With(field, value) })
}

// Remove deletes the certification with the given id.
func (e *CertificationEditor) Remove(id int64) domain.Resume { return e.remove(id) }
