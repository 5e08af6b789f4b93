package domain

import "strconv"

// ProfileField names one editable field of the Profile.
type ProfileField string

const (
	ProfileName     ProfileField = "name"
	ProfileTitle    ProfileField = "title"
	ProfileEmail    ProfileField = "email"
	ProfilePhone    ProfileField = "phone"
	ProfileLocation ProfileField = "location"
	ProfileWebsite  ProfileField = "website"
	ProfileLinkedIn ProfileField = "linkedin"
	ProfileGitHub   ProfileField = "github"
	ProfileTwitter  ProfileField = "twitter"
	ProfileSummary  ProfileField = "summary"
)

// AllProfileFields returns the profile fields in form order.
func AllProfileFields() []ProfileField {
	return []ProfileField{
		ProfileName, ProfileTitle, ProfileEmail, ProfilePhone, ProfileLocation,
		ProfileWebsite, ProfileLinkedIn, ProfileGitHub, ProfileTwitter, ProfileSummary,
	}
}

// Label returns the human-readable form label.
func (f ProfileField) Label() string {
	switch f {
	case ProfileName:
		return "Full Name"
	case ProfileTitle:
		return "Job Title"
	case ProfileEmail:
		return "Email"
	case ProfilePhone:
		return "Phone"
	case ProfileLocation:
		return "Location"
	case ProfileWebsite:
		return "Website"
	case ProfileLinkedIn:
		return "LinkedIn"
	case ProfileGitHub:
		return "GitHub"
	case ProfileTwitter:
		return "Twitter / X"
	case ProfileSummary:
		return "Professional Summary"
	default:
		return string(f)
	}
}

// Get returns the current value of a profile field.
func (p Profile) Get(f ProfileField) string {
	switch f {
	case ProfileName:
		return p.Name
	case ProfileTitle:
		return p.Title
	case ProfileEmail:
		return p.Email
	case ProfilePhone:
		return p.Phone
	case ProfileLocation:
		return p.Location
	case ProfileWebsite:
		return p.Website
	case ProfileLinkedIn:
		return p.LinkedIn
	case ProfileGitHub:
		return p.GitHub
	case ProfileTwitter:
		return p.Twitter
	case ProfileSummary:
		return p.Summary
	default:
		return ""
	}
}

// With returns a copy of the profile with one field replaced.
// Unknown fields return the profile unchanged.
func (p Profile) With(f ProfileField, value string) Profile {
	switch f {
	case ProfileName:
		p.Name = value
	case ProfileTitle:
		p.Title = value
	case ProfileEmail:
		p.Email = value
	case ProfilePhone:
		p.Phone = value
	case ProfileLocation:
		p.Location = value
	case ProfileWebsite:
		p.Website = value
	case ProfileLinkedIn:
		p.LinkedIn = value
	case ProfileGitHub:
		p.GitHub = value
	case ProfileTwitter:
		p.Twitter = value
	case ProfileSummary:
		p.Summary = value
	}
	return p
}

// SkillField names one editable field of a Skill.
type SkillField string

const (
	SkillCategory SkillField = "category"
	SkillName     SkillField = "name"
	SkillLevel    SkillField = "level"
)

// AllSkillFields returns the skill fields in form order.
func AllSkillFields() []SkillField {
	return []SkillField{SkillCategory, SkillName, SkillLevel}
}

// Label returns the human-readable form label.
func (f SkillField) Label() string {
	switch f {
	case SkillCategory:
		return "Category"
	case SkillName:
		return "Skill Name"
	case SkillLevel:
		return "Level"
	default:
		return string(f)
	}
}

// Get returns the current value of a skill field as text.
func (s Skill) Get(f SkillField) string {
	switch f {
	case SkillCategory:
		return s.Category
	case SkillName:
		return s.Name
	case SkillLevel:
		return strconv.Itoa(s.Level)
	default:
		return ""
	}
}

// With returns a copy of the skill with one field replaced. A level value
// that is not an integer becomes 0.
func (s Skill) With(f SkillField, value string) Skill {
	switch f {
	case SkillCategory:
		s.Category = value
	case SkillName:
		s.Name = value
	case SkillLevel:
		s.Level = ParseLevel(value)
	}
	return s
}

// WithLevel returns a copy of the skill at the given level. The level is not
// clamped.
func (s Skill) WithLevel(level int) Skill {
	s.Level = level
	return s
}

// ParseLevel converts user text into a skill level, returning 0 for anything
// that is not a base-10 integer.
func ParseLevel(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// ClampInputLevel bounds a level entered through an editor to
// [MinInputSkillLevel, MaxSkillLevel].
func ClampInputLevel(level int) int {
	if level < MinInputSkillLevel {
		return MinInputSkillLevel
	}
	if level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return level
}

// ExperienceField names one editable scalar field of an Experience.
type ExperienceField string

const (
	ExperienceCompany     ExperienceField = "company"
	ExperienceRole        ExperienceField = "role"
	ExperiencePeriod      ExperienceField = "period"
	ExperienceLocation    ExperienceField = "location"
	ExperienceDescription ExperienceField = "description"
)

// AllExperienceFields returns the experience fields in form order.
func AllExperienceFields() []ExperienceField {
	return []ExperienceField{
		ExperienceCompany, ExperienceRole, ExperiencePeriod,
		ExperienceLocation, ExperienceDescription,
	}
}

// Label returns the human-readable form label.
func (f ExperienceField) Label() string {
	switch f {
	case ExperienceCompany:
		return "Company"
	case ExperienceRole:
		return "Role"
	case ExperiencePeriod:
		return "Period"
	case ExperienceLocation:
		return "Location"
	case ExperienceDescription:
		return "Description"
	default:
		return string(f)
	}
}

// Get returns the current value of an experience field.
func (e Experience) Get(f ExperienceField) string {
	switch f {
	case ExperienceCompany:
		return e.Company
	case ExperienceRole:
		return e.Role
	case ExperiencePeriod:
		return e.Period
	case ExperienceLocation:
		return e.Location
	case ExperienceDescription:
		return e.Description
	default:
		return ""
	}
}

// With returns a copy of the experience with one field replaced.
// The highlights slice is shared with the receiver.
func (e Experience) With(f ExperienceField, value string) Experience {
	switch f {
	case ExperienceCompany:
		e.Company = value
	case ExperienceRole:
		e.Role = value
	case ExperiencePeriod:
		e.Period = value
	case ExperienceLocation:
		e.Location = value
	case ExperienceDescription:
		e.Description = value
	}
	return e
}

// WithHighlights returns a copy of the experience using the given highlights.
func (e Experience) WithHighlights(highlights []string) Experience {
	e.Highlights = highlights
	return e
}

// EducationField names one editable field of an Education entry.
type EducationField string

const (
	EducationInstitution EducationField = "institution"
	EducationDegree      EducationField = "degree"
	EducationPeriod      EducationField = "period"
	EducationLocation    EducationField = "location"
	EducationGPA         EducationField = "gpa"
	EducationDescription EducationField = "description"
)

// AllEducationFields returns the education fields in form order.
func AllEducationFields() []EducationField {
	return []EducationField{
		EducationInstitution, EducationDegree, EducationPeriod,
		EducationLocation, EducationGPA, EducationDescription,
	}
}

// Label returns the human-readable form label.
func (f EducationField) Label() string {
	switch f {
	case EducationInstitution:
		return "Institution"
	case EducationDegree:
		return "Degree"
	case EducationPeriod:
		return "Period"
	case EducationLocation:
		return "Location"
	case EducationGPA:
		return "GPA / Grade"
	case EducationDescription:
		return "Description"
	default:
		return string(f)
	}
}

// Get returns the current value of an education field.
func (e Education) Get(f EducationField) string {
	switch f {
	case EducationInstitution:
		return e.Institution
	case EducationDegree:
		return e.Degree
	case EducationPeriod:
		return e.Period
	case EducationLocation:
		return e.Location
	case EducationGPA:
		return e.GPA
	case EducationDescription:
		return e.Description
	default:
		return ""
	}
}

// With returns a copy of the education entry with one field replaced.
func (e Education) With(f EducationField, value string) Education {
	switch f {
	case EducationInstitution:
		e.Institution = value
	case EducationDegree:
		e.Degree = value
	case EducationPeriod:
		e.Period = value
	case EducationLocation:
		e.Location = value
	case EducationGPA:
		e.GPA = value
	case EducationDescription:
		e.Description = value
	}
	return e
}

// ProjectField names one editable field of a Project.
type ProjectField string

const (
	ProjectName        ProjectField = "name"
	ProjectTech        ProjectField = "tech"
	ProjectPeriod      ProjectField = "period"
	ProjectLink        ProjectField = "link"
	ProjectDescription ProjectField = "description"
)

// AllProjectFields returns the project fields in form order.
func AllProjectFields() []ProjectField {
	return []ProjectField{ProjectName, ProjectTech, ProjectPeriod, ProjectLink, ProjectDescription}
}

// Label returns the human-readable form label.
func (f ProjectField) Label() string {
	switch f {
	case ProjectName:
		return "Project Name"
	case ProjectTech:
		return "Tech Stack"
	case ProjectPeriod:
		return "Year / Period"
	case ProjectLink:
		return "Link"
	case ProjectDescription:
		return "Description"
	default:
		return string(f)
	}
}

// Get returns the current value of a project field.
func (p Project) Get(f ProjectField) string {
	switch f {
	case ProjectName:
		return p.Name
	case ProjectTech:
		return p.Tech
	case ProjectPeriod:
		return p.Period
	case ProjectLink:
		return p.Link
	case ProjectDescription:
		return p.Description
	default:
		return ""
	}
}

// With returns a copy of the project with one field replaced.
func (p Project) With(f ProjectField, value string) Project {
	switch f {
	case ProjectName:
		p.Name = value
	case ProjectTech:
		p.Tech = value
	case ProjectPeriod:
		p.Period = value
	case ProjectLink:
		p.Link = value
	case ProjectDescription:
		p.Description = value
	}
	return p
}

// CertificationField names one editable field of a Certification.
type CertificationField string

const (
	CertificationName         CertificationField = "name"
	CertificationIssuer       CertificationField = "issuer"
	CertificationYear         CertificationField = "year"
	CertificationCredentialID CertificationField = "credentialId"
)

// AllCertificationFields returns the certification fields in form order.
func AllCertificationFields() []CertificationField {
	return []CertificationField{
		CertificationName, CertificationIssuer, CertificationYear, CertificationCredentialID,
	}
}

// Label returns the human-readable form label.
func (f CertificationField) Label() string {
	switch f {
	case CertificationName:
		return "Certification Name"
	case CertificationIssuer:
		return "Issuer"
	case CertificationYear:
		return "Year"
	case CertificationCredentialID:
		return "Credential ID"
	default:
		return string(f)
	}
}

// Get returns the current value of a certification field.
func (c Certification) Get(f CertificationField) string {
	switch f {
	case CertificationName:
		return c.Name
	case CertificationIssuer:
		return c.Issuer
	case CertificationYear:
		return c.Year
	case CertificationCredentialID:
		return c.CredentialID
	default:
		return ""
	}
}

// With returns a copy of the certification with one field replaced.
func (c Certification) With(f CertificationField, value string) Certification {
	switch f {
	case CertificationName:
		c.Name = value
	case CertificationIssuer:
		c.Issuer = value
	case CertificationYear:
		c.Year = value
	case CertificationCredentialID:
		c.CredentialID = value
	}
	return c
}
