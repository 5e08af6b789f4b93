package domain

// Section identifies one editable area of the resume.
type Section string

const (
	SectionProfile        Section = "profile"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// AllSections returns the sections in sidebar order.
func AllSections() []Section {
	return []Section{
		SectionProfile,
		SectionSkills,
		SectionExperience,
		SectionEducation,
		SectionProjects,
		SectionCertifications,
	}
}

// IsValid returns true if the section is known.
func (s Section) IsValid() bool {
	switch s {
	case SectionProfile, SectionSkills, SectionExperience,
		SectionEducation, SectionProjects, SectionCertifications:
		return true
	default:
		return false
	}
}

// String returns the section key.
func (s Section) String() string {
	return string(s)
}

// Label returns the sidebar label.
func (s Section) Label() string {
	switch s {
	case SectionProfile:
		return "Profile"
	case SectionSkills:
		return "Skills"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionProjects:
		return "Projects"
	case SectionCertifications:
		return "Certifications"
	default:
		return string(s)
	}
}

// IsCollection reports whether the section holds a list of records rather
// than the singleton profile.
func (s Section) IsCollection() bool {
	return s.IsValid() && s != SectionProfile
}
