package services

import "github.com/custodia-labs/resumedesk/internal/core/domain"

// Collection is a lens onto one ordered record list of a Resume. Its
// operations are pure: they return a new Resume that copies only the list
// being changed and shares every other list with the input.
type Collection[T any] struct {
	items func(domain.Resume) []T
	with  func(domain.Resume, []T) domain.Resume
	id    func(T) int64
	blank func(int64) T
}

// Add appends a blank record with the given id.
func (c Collection[T]) Add(doc domain.Resume, id int64) domain.Resume {
	cur := c.items(doc)
	next := make([]T, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, c.blank(id))
	return c.with(doc, next)
}

// Update applies patch to the record with the given id. When no record has
// that id, doc is returned unchanged with false.
func (c Collection[T]) Update(doc domain.Resume, id int64, patch func(T) T) (domain.Resume, bool) {
	cur := c.items(doc)
	idx := c.index(cur, id)
	if idx < 0 {
		return doc, false
	}

	next := make([]T, len(cur))
	copy(next, cur)
	next[idx] = patch(next[idx])
	return c.with(doc, next), true
}

// Remove drops the record with the given id, keeping the order of the rest.
func (c Collection[T]) Remove(doc domain.Resume, id int64) (domain.Resume, bool) {
	cur := c.items(doc)
	idx := c.index(cur, id)
	if idx < 0 {
		return doc, false
	}

	next := make([]T, 0, len(cur)-1)
	next = append(next, cur[:idx]...)
	next = append(next, cur[idx+1:]...)
	return c.with(doc, next), true
}

// Find returns the record with the given id.
func (c Collection[T]) Find(doc domain.Resume, id int64) (T, bool) {
	cur := c.items(doc)
	if idx := c.index(cur, id); idx >= 0 {
		return cur[idx], true
	}
	var zero T
	return zero, false
}

// IDs returns the ids of every record in document order.
func (c Collection[T]) IDs(doc domain.Resume) []int64 {
	cur := c.items(doc)
	ids := make([]int64, len(cur))
	for i, item := range cur {
		ids[i] = c.id(item)
	}
	return ids
}

func (c Collection[T]) index(items []T, id int64) int {
	for i, item := range items {
		if c.id(item) == id {
			return i
		}
	}
	return -1
}

// Lenses for the five record lists.
var (
	Skills = Collection[domain.Skill]{
		items: func(r domain.Resume) []domain.Skill { return r.Skills },
		with: func(r domain.Resume, s []domain.Skill) domain.Resume {
			r.Skills = s
			return r
		},
		id: func(s domain.Skill) int64 { return s.ID },
		blank: func(id int64) domain.Skill {
			return domain.Skill{ID: id, Level: domain.DefaultSkillLevel}
		},
	}

	Experiences = Collection[domain.Experience]{
		items: func(r domain.Resume) []domain.Experience { return r.Experience },
		with: func(r domain.Resume, e []domain.Experience) domain.Resume {
			r.Experience = e
			return r
		},
		id: func(e domain.Experience) int64 { return e.ID },
		blank: func(id int64) domain.Experience {
			return domain.Experience{ID: id, Highlights: []string{}}
		},
	}

	Educations = Collection[domain.Education]{
		items: func(r domain.Resume) []domain.Education { return r.Education },
		with: func(r domain.Resume, e []domain.Education) domain.Resume {
			r.Education = e
			return r
		},
		id:    func(e domain.Education) int64 { return e.ID },
		blank: func(id int64) domain.Education { return domain.Education{ID: id} },
	}

	Projects = Collection[domain.Project]{
		items: func(r domain.Resume) []domain.Project { return r.Projects },
		with: func(r domain.Resume, p []domain.Project) domain.Resume {
			r.Projects = p
			return r
		},
		id:    func(p domain.Project) int64 { return p.ID },
		blank: func(id int64) domain.Project { return domain.Project{ID: id} },
	}

	Certifications = Collection[domain.Certification]{
		items: func(r domain.Resume) []domain.Certification { return r.Certifications },
		with: func(r domain.Resume, c []domain.Certification) domain.Resume {
			r.Certifications = c
			return r
		},
		id:    func(c domain.Certification) int64 { return c.ID },
		blank: func(id int64) domain.Certification { return domain.Certification{ID: id} },
	}
)
