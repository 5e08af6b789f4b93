package editor

import (
	"strconv"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// Editors bundles the section editors the forms call.
type Editors struct {
	Profile        driving.ProfileEditor
	Skills         driving.SkillEditor
	Experience     driving.ExperienceEditor
	Education      driving.EducationEditor
	Projects       driving.ProjectEditor
	Certifications driving.CertificationEditor
}

type rowKind int

const (
	rowRecord rowKind = iota
	rowField
	rowHighlight
)

// row is one line of the form.
type row struct {
	kind     rowKind
	recordID int64
	field    string
	label    string
	value    string
	hint     string
	index    int
}

func (r row) editable() bool {
	return r.kind != rowRecord
}

// form adapts one section to rows and editor calls.
type form struct {
	rows func(domain.Resume) []row
	set  func(r row, value string)

	// add and remove are nil for the profile.
	add    func() int64
	remove func(id int64)

	// Experience only.
	addHighlight    func(id int64)
	removeHighlight func(id int64, index int)

	// Skills only.
	level    func(doc domain.Resume, id int64) (int, bool)
	setLevel func(id int64, level int)
}

// placeholders shown in empty inputs.
var placeholders = map[string]string{
	"profile.name":                "Your full name",
	"profile.title":               "e.g. Full Stack Developer",
	"profile.email":               "you@email.com",
	"profile.phone":               "+91 00000 00000",
	"profile.location":            "City, Country",
	"profile.website":             "https://yoursite.com",
	"profile.linkedin":            "https://linkedin.com/in/...",
	"profile.github":              "https://github.com/...",
	"profile.twitter":             "https://x.com/...",
	"skills.category":             "e.g. Frontend",
	"skills.name":                 "e.g. React / TypeScript",
	"experience.company":          "Company Inc.",
	"experience.role":             "Software Engineer",
	"experience.period":           "Jan 2022 – Present",
	"experience.location":         "City, Country",
	"education.institution":       "University Name",
	"education.degree":            "B.Tech in Computer Science",
	"education.period":            "2017 – 2021",
	"education.location":          "City, Country",
	"education.gpa":               "8.5 / 10.0",
	"projects.name":               "My Awesome Project",
	"projects.tech":               "React, Node.js, MongoDB",
	"projects.period":             "2024",
	"projects.link":               "https://github.com/you/project",
	"certifications.name":         "AWS Solutions Architect",
	"certifications.issuer":       "Amazon Web Services",
	"certifications.year":         "2023",
	"certifications.credentialId": "ABC-DEF-123",
}

func placeholder(section domain.Section, field string) string {
	return placeholders[section.String()+"."+field]
}

// recordRows lays out one card per record: a header row followed by a row
// per field.
func recordRows[T any, F ~string](
	section domain.Section,
	items []T,
	id func(T) int64,
	title func(T) string,
	fields []F,
	label func(F) string,
	get func(T, F) string,
	extra func(T) []row,
) []row {
	var rows []row
	for _, item := range items {
		rid := id(item)
		rows = append(rows, row{kind: rowRecord, recordID: rid, value: title(item)})
		for _, f := range fields {
			rows = append(rows, row{
				kind:     rowField,
				recordID: rid,
				field:    string(f),
				label:    label(f),
				value:    get(item, f),
				hint:     placeholder(section, string(f)),
			})
		}
		if extra != nil {
			rows = append(rows, extra(item)...)
		}
	}
	return rows
}

func addedID(_ domain.Resume, id int64) int64 {
	return id
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func newForms(e Editors) map[domain.Section]form {
	return map[domain.Section]form{
		domain.SectionProfile:        profileForm(e.Profile),
		domain.SectionSkills:         skillsForm(e.Skills),
		domain.SectionExperience:     experienceForm(e.Experience),
		domain.SectionEducation:      educationForm(e.Education),
		domain.SectionProjects:       projectsForm(e.Projects),
		domain.SectionCertifications: certificationsForm(e.Certifications),
	}
}

func profileForm(ed driving.ProfileEditor) form {
	return form{
		rows: func(doc domain.Resume) []row {
			fields := domain.AllProfileFields()
			rows := make([]row, 0, len(fields))
			for _, f := range fields {
				rows = append(rows, row{
					kind:  rowField,
					field: string(f),
					label: f.Label(),
					value: doc.Profile.Get(f),
					hint:  placeholder(domain.SectionProfile, string(f)),
				})
			}
			return rows
		},
		set: func(r row, value string) {
			ed.SetField(domain.ProfileField(r.field), value)
		},
	}
}

func skillsForm(ed driving.SkillEditor) form {
	find := func(doc domain.Resume, id int64) (domain.Skill, bool) {
		for _, s := range doc.Skills {
			if s.ID == id {
				return s, true
			}
		}
		return domain.Skill{}, false
	}

	return form{
		rows: func(doc domain.Resume) []row {
			return recordRows(domain.SectionSkills, doc.Skills,
				func(s domain.Skill) int64 { return s.ID },
				func(s domain.Skill) string { return orDefault(s.Name, "New Skill") },
				domain.AllSkillFields(), domain.SkillField.Label, domain.Skill.Get, nil)
		},
		set: func(r row, value string) {
			if domain.SkillField(r.field) == domain.SkillLevel {
				ed.SetLevel(r.recordID, domain.ClampInputLevel(domain.ParseLevel(value)))
				return
			}
			ed.Update(r.recordID, domain.SkillField(r.field), value)
		},
		add:    func() int64 { return addedID(ed.Add()) },
		remove: func(id int64) { ed.Remove(id) },
		level: func(doc domain.Resume, id int64) (int, bool) {
			s, ok := find(doc, id)
			return s.Level, ok
		},
		setLevel: func(id int64, level int) { ed.SetLevel(id, level) },
	}
}

func experienceForm(ed driving.ExperienceEditor) form {
	highlights := func(x domain.Experience) []row {
		rows := make([]row, 0, len(x.Highlights))
		for i, h := range x.Highlights {
			rows = append(rows, row{
				kind:     rowHighlight,
				recordID: x.ID,
				label:    "•",
				value:    h,
				hint:     "Achievement " + strconv.Itoa(i+1),
				index:    i,
			})
		}
		return rows
	}

	return form{
		rows: func(doc domain.Resume) []row {
			return recordRows(domain.SectionExperience, doc.Experience,
				func(x domain.Experience) int64 { return x.ID },
				func(x domain.Experience) string { return orDefault(x.Company, "New Company") },
				domain.AllExperienceFields(), domain.ExperienceField.Label, domain.Experience.Get, highlights)
		},
		set: func(r row, value string) {
			if r.kind == rowHighlight {
				ed.UpdateHighlight(r.recordID, r.index, value)
				return
			}
			ed.Update(r.recordID, domain.ExperienceField(r.field), value)
		},
		add:             func() int64 { return addedID(ed.Add()) },
		remove:          func(id int64) { ed.Remove(id) },
		addHighlight:    func(id int64) { ed.AddHighlight(id) },
		removeHighlight: func(id int64, index int) { ed.RemoveHighlight(id, index) },
	}
}

func educationForm(ed driving.EducationEditor) form {
	return form{
		rows: func(doc domain.Resume) []row {
			return recordRows(domain.SectionEducation, doc.Education,
				func(x domain.Education) int64 { return x.ID },
				func(x domain.Education) string { return orDefault(x.Institution, "New Institution") },
				domain.AllEducationFields(), domain.EducationField.Label, domain.Education.Get, nil)
		},
		set: func(r row, value string) {
			ed.Update(r.recordID, domain.EducationField(r.field), value)
		},
		add:    func() int64 { return addedID(ed.Add()) },
		remove: func(id int64) { ed.Remove(id) },
	}
}

func projectsForm(ed driving.ProjectEditor) form {
	return form{
		rows: func(doc domain.Resume) []row {
			return recordRows(domain.SectionProjects, doc.Projects,
				func(x domain.Project) int64 { return x.ID },
				func(x domain.Project) string { return orDefault(x.Name, "New Project") },
				domain.AllProjectFields(), domain.ProjectField.Label, domain.Project.Get, nil)
		},
		set: func(r row, value string) {
			ed.Update(r.recordID, domain.ProjectField(r.field), value)
		},
		add:    func() int64 { return addedID(ed.Add()) },
		remove: func(id int64) { ed.Remove(id) },
	}
}

func certificationsForm(ed driving.CertificationEditor) form {
	return form{
		rows: func(doc domain.Resume) []row {
			return recordRows(domain.SectionCertifications, doc.Certifications,
				func(x domain.Certification) int64 { return x.ID },
				func(x domain.Certification) string { return orDefault(x.Name, "New Certification") },
				domain.AllCertificationFields(), domain.CertificationField.Label, domain.Certification.Get, nil)
		},
		set: func(r row, value string) {
			ed.Update(r.recordID, domain.CertificationField(r.field), value)
		},
		add:    func() int64 { return addedID(ed.Add()) },
		remove: func(id int64) { ed.Remove(id) },
	}
}
