package domain

// Skill level bounds. The model accepts the full [0,100] range; editors clamp
// user input to [MinInputSkillLevel, MaxSkillLevel].
const (
	MinSkillLevel      = 0
	MaxSkillLevel      = 100
	MinInputSkillLevel = 1

	// DefaultSkillLevel is the level given to a freshly added skill.
	DefaultSkillLevel = 80
)

// Profile is the singleton record describing the resume owner.
// All fields are free text and may be empty.
type Profile struct {
	Name     string `json:"name" toml:"name"`
	Title    string `json:"title" toml:"title"`
	Email    string `json:"email" toml:"email"`
	Phone    string `json:"phone" toml:"phone"`
	Location string `json:"location" toml:"location"`
	Website  string `json:"website" toml:"website"`
	LinkedIn string `json:"linkedin" toml:"linkedin"`
	GitHub   string `json:"github" toml:"github"`
	Twitter  string `json:"twitter" toml:"twitter"`
	Summary  string `json:"summary" toml:"summary"`
}

// Skill is a single proficiency entry grouped by category in the preview.
type Skill struct {
	ID       int64  `json:"id" toml:"id"`
	Category string `json:"category" toml:"category"`
	Name     string `json:"name" toml:"name"`
	Level    int    `json:"level" toml:"level"`
}

// Experience is a work history entry.
type Experience struct {
	ID          int64  `json:"id" toml:"id"`
	Company     string `json:"company" toml:"company"`
	Role        string `json:"role" toml:"role"`
	Period      string `json:"period" toml:"period"`
	Location    string `json:"location" toml:"location"`
	Description string `json:"description" toml:"description"`

	// Highlights is an ordered list of bullet points. Entries may be empty
	// while the user is still typing.
	Highlights []string `json:"highlights" toml:"highlights"`
}

// Education is a degree or course of study.
type Education struct {
	ID          int64  `json:"id" toml:"id"`
	Institution string `json:"institution" toml:"institution"`
	Degree      string `json:"degree" toml:"degree"`
	Period      string `json:"period" toml:"period"`
	Location    string `json:"location" toml:"location"`
	GPA         string `json:"gpa" toml:"gpa"`
	Description string `json:"description" toml:"description"`
}

// Project is a portfolio entry.
type Project struct {
	ID          int64  `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Tech        string `json:"tech" toml:"tech"`
	Period      string `json:"period" toml:"period"`
	Link        string `json:"link" toml:"link"`
	Description string `json:"description" toml:"description"`
}

// Certification is a credential issued by a third party.
type Certification struct {
	ID           int64  `json:"id" toml:"id"`
	Name         string `json:"name" toml:"name"`
	Issuer       string `json:"issuer" toml:"issuer"`
	Year         string `json:"year" toml:"year"`
	CredentialID string `json:"credentialId" toml:"credential_id"`
}

// Resume is the whole editable document: one profile and five ordered
// collections.
//
// A Resume is treated as an immutable value. Operations that change it build a
// new Resume and copy only the slices they modify; untouched slices are shared
// with the previous value and must never be written through.
type Resume struct {
	Profile        Profile         `json:"profile" toml:"profile"`
	Skills         []Skill         `json:"skills" toml:"skills"`
	Experience     []Experience    `json:"experience" toml:"experience"`
	Education      []Education     `json:"education" toml:"education"`
	Projects       []Project       `json:"projects" toml:"projects"`
	Certifications []Certification `json:"certifications" toml:"certifications"`
}

// Clone returns a deep copy of the document. Callers that hand a Resume to
// code outside the core (encoders, tests that mutate) use it to keep the
// shared slices untouched.
func (r Resume) Clone() Resume {
	out := r
	out.Skills = append([]Skill(nil), r.Skills...)
	out.Education = append([]Education(nil), r.Education...)
	out.Projects = append([]Project(nil), r.Projects...)
	out.Certifications = append([]Certification(nil), r.Certifications...)
	out.Experience = make([]Experience, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Highlights = append([]string(nil), exp.Highlights...)
		out.Experience[i] = exp
	}
	if r.Experience == nil {
		out.Experience = nil
	}
	return out
}

// Count returns the number of records in the given collection section.
// The profile section always counts as one.
func (r Resume) Count(s Section) int {
	switch s {
	case SectionProfile:
		return 1
	case SectionSkills:
		return len(r.Skills)
	case SectionExperience:
		return len(r.Experience)
	case SectionEducation:
		return len(r.Education)
	case SectionProjects:
		return len(r.Projects)
	case SectionCertifications:
		return len(r.Certifications)
	default:
		return 0
	}
}
