package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/services"
)

func defaultModel() domain.RenderModel {
	return services.NewPreviewRenderer().Project(domain.DefaultResume())
}

func TestRender_DefaultDocument(t *testing.T) {
	out := Render(defaultModel(), 80, nil)

	assert.Contains(t, out, "V Chaitanya Chowdari")
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "CERTIFICATIONS")
	assert.Contains(t, out, "LLMs / GPT / Claude")
	assert.Contains(t, out, " 95%")
	assert.Contains(t, out, "• Led team of 5 engineers")
}

func TestRender_SectionOrder(t *testing.T) {
	out := Render(defaultModel(), 80, nil)

	titles := []string{"SUMMARY", "SKILLS", "WORK EXPERIENCE", "PROJECTS", "EDUCATION", "CERTIFICATIONS"}
	last := -1
	for _, title := range titles {
		i := strings.Index(out, title)
		require.GreaterOrEqual(t, i, 0, title)
		assert.Greater(t, i, last, title)
		last = i
	}
}

func TestRender_EmptyDocumentShowsPlaceholders(t *testing.T) {
	out := Render(domain.RenderModel{}, 60, nil)

	assert.Contains(t, out, "Your Name")
	assert.Contains(t, out, "Your Title")
	assert.NotContains(t, out, "SKILLS")
	assert.NotContains(t, out, "SUMMARY")
}

func TestRender_SkillBar(t *testing.T) {
	model := domain.RenderModel{
		SkillGroups: []domain.SkillGroup{{
			Category: "Go",
			Skills:   []domain.Skill{{ID: 1, Name: "Concurrency", Level: 50}},
		}},
	}

	out := Render(model, 60, nil)

	assert.Contains(t, out, strings.Repeat("█", barWidth/2)+strings.Repeat("░", barWidth/2))
	assert.Contains(t, out, " 50%")
}

func TestRender_LinesFitWidth(t *testing.T) {
	out := Render(defaultModel(), 40, nil)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40, line)
	}
}

func TestBarCells(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{50, 6},
		{95, 11},
		{100, 12},
		{150, 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, barCells(tt.level, barWidth), "level %d", tt.level)
	}
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, "Go    ", fitWidth("Go", 6))
	assert.Equal(t, "Kubern…", fitWidth("Kubernetes", 7))
}

func TestView_Scrolls(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(60, 10)
	v.SetModel(defaultModel())
	v.SetFocused(true)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Offset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Greater(t, v.Offset(), 1)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, v.Offset())
}

func TestView_IgnoresKeysWhenUnfocused(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(60, 10)
	v.SetModel(defaultModel())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 0, v.Offset())
}

func TestView_SetModelKeepsOffset(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(60, 10)
	v.SetModel(defaultModel())
	v.SetFocused(true)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v.SetModel(defaultModel())

	assert.Equal(t, 2, v.Offset())
	assert.Contains(t, v.View(), "Live Preview")
}
