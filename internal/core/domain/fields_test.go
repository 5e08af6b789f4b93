package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_With(t *testing.T) {
	p := DefaultResume().Profile

	for _, f := range AllProfileFields() {
		t.Run(string(f), func(t *testing.T) {
			updated := p.With(f, "new value")
			assert.Equal(t, "new value", updated.Get(f))
			assert.NotEqual(t, "new value", p.Get(f), "receiver must not change")
			assert.NotEmpty(t, f.Label())
		})
	}
}

func TestProfile_WithUnknownField(t *testing.T) {
	p := DefaultResume().Profile
	assert.Equal(t, p, p.With(ProfileField("nickname"), "x"))
	assert.Equal(t, "", p.Get(ProfileField("nickname")))
}

func TestSkill_WithLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "numeric", value: "70", expected: 70},
		{name: "non-numeric becomes zero", value: "abc", expected: 0},
		{name: "empty becomes zero", value: "", expected: 0},
		{name: "out of range kept", value: "150", expected: 150},
		{name: "negative kept", value: "-3", expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Skill{ID: 1, Level: 50}.With(SkillLevel, tt.value)
			assert.Equal(t, tt.expected, s.Level)
		})
	}
}

func TestSkill_WithText(t *testing.T) {
	s := Skill{ID: 4, Category: "Frontend", Name: "React", Level: 90}

	updated := s.With(SkillName, "Vue")
	assert.Equal(t, "Vue", updated.Name)
	assert.Equal(t, "React", s.Name)
	assert.Equal(t, "90", updated.Get(SkillLevel))
	assert.Equal(t, 10, s.WithLevel(10).Level)
}

func TestClampInputLevel(t *testing.T) {
	assert.Equal(t, 1, ClampInputLevel(0))
	assert.Equal(t, 1, ClampInputLevel(-20))
	assert.Equal(t, 100, ClampInputLevel(101))
	assert.Equal(t, 55, ClampInputLevel(55))
}

func TestExperience_With(t *testing.T) {
	e := DefaultResume().Experience[0]

	for _, f := range AllExperienceFields() {
		updated := e.With(f, "x")
		assert.Equal(t, "x", updated.Get(f), f)
	}
	assert.Equal(t, e.ID, e.With(ExperienceRole, "CTO").ID)

	hl := e.WithHighlights([]string{"one"})
	assert.Equal(t, []string{"one"}, hl.Highlights)
	assert.Len(t, e.Highlights, 3)
}

func TestEducation_With(t *testing.T) {
	e := DefaultResume().Education[0]
	for _, f := range AllEducationFields() {
		assert.Equal(t, "x", e.With(f, "x").Get(f), f)
		assert.NotEmpty(t, f.Label())
	}
	assert.Equal(t, e, e.With(EducationField("minor"), "x"))
}

func TestProject_With(t *testing.T) {
	p := DefaultResume().Projects[0]
	for _, f := range AllProjectFields() {
		assert.Equal(t, "x", p.With(f, "x").Get(f), f)
		assert.NotEmpty(t, f.Label())
	}
	assert.Equal(t, p, p.With(ProjectField("stars"), "x"))
}

func TestCertification_With(t *testing.T) {
	c := DefaultResume().Certifications[0]
	for _, f := range AllCertificationFields() {
		assert.Equal(t, "x", c.With(f, "x").Get(f), f)
		assert.NotEmpty(t, f.Label())
	}
	assert.Equal(t, "Credential ID", CertificationCredentialID.Label())
	assert.Equal(t, c, c.With(CertificationField("expires"), "x"))
}
