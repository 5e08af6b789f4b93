package domain

// ContactKind identifies a contact line in the preview header.
type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactLocation ContactKind = "location"
	ContactWebsite  ContactKind = "website"
	ContactGitHub   ContactKind = "github"
	ContactLinkedIn ContactKind = "linkedin"
	ContactTwitter  ContactKind = "twitter"
)

// ContactLine is one non-empty contact field shown under the name.
type ContactLine struct {
	Kind  ContactKind
	Value string
}

// PreviewHeader is the top block of the rendered resume.
type PreviewHeader struct {
	Name     string
	Title    string
	Contacts []ContactLine
}

// SkillGroup holds the skills of one category in document order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// PreviewEntry is one record inside a rendered section.
type PreviewEntry struct {
	Heading    string
	Subheading string
	Meta       string
	Body       string
	Bullets    []string
}

// PreviewSection is a titled list of entries. Sections with no entries are
// never produced.
type PreviewSection struct {
	Section Section
	Title   string
	Entries []PreviewEntry
}

// RenderModel is the presentation-neutral projection of a Resume used by the
// live preview. It is rebuilt from scratch on every document change.
type RenderModel struct {
	Header      PreviewHeader
	Summary     string
	SkillGroups []SkillGroup
	Sections    []PreviewSection
}

// IsEmpty reports whether the model carries nothing beyond an empty header.
func (m RenderModel) IsEmpty() bool {
	return m.Header.Name == "" &&
		m.Header.Title == "" &&
		len(m.Header.Contacts) == 0 &&
		m.Summary == "" &&
		len(m.SkillGroups) == 0 &&
		len(m.Sections) == 0
}

// Section returns the rendered section for s, if present.
func (m RenderModel) Section(s Section) (PreviewSection, bool) {
	for _, ps := range m.Sections {
		if ps.Section == s {
			return ps, true
		}
	}
	return PreviewSection{}, false
}
