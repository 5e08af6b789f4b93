package sidebar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// moveTo selects the item with the given label.
func moveTo(t *testing.T, v *View, label string) {
	t.Helper()
	for i, item := range v.items {
		if item.Label == label {
			v.selected = i
			return
		}
	}
	t.Fatalf("no item %q", label)
}

func TestNewView_Items(t *testing.T) {
	v := NewView(nil)

	require.Len(t, v.items, len(domain.AllSections())+4)
	assert.Equal(t, domain.SectionProfile, v.items[0].Section)
	assert.True(t, v.items[0].IsSection())
	assert.Equal(t, ActionQuit, v.items[len(v.items)-1].Action)
	assert.Equal(t, domain.SectionProfile, v.Active())
}

func TestSidebar_NavigationFollowsSections(t *testing.T) {
	v := NewView(nil)

	v, cmd := v.Update(key("j"))

	assert.Equal(t, 1, v.Selected())
	require.NotNil(t, cmd)
	assert.Equal(t, messages.SectionSelected{Section: domain.SectionSkills}, cmd())
}

func TestSidebar_NavigationBounds(t *testing.T) {
	v := NewView(nil)

	v, cmd := v.Update(key("k"))
	assert.Equal(t, 0, v.Selected())
	assert.Nil(t, cmd, "active section does not re-emit")

	for i := 0; i < 20; i++ {
		v, _ = v.Update(key("down"))
	}
	assert.Equal(t, len(v.items)-1, v.Selected())
}

func TestSidebar_Actions(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		canEdit  bool
		expected tea.Msg
	}{
		{"preview", "Preview", true, messages.PreviewToggled{}},
		{"save as admin", "Save", true, messages.SaveRequested{}},
		{"save as viewer", "Save", false, messages.ViewOnly{}},
		{"logout", "Logout", false, messages.LoggedOut{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(nil)
			v.SetCanEdit(tt.canEdit)
			moveTo(t, v, tt.label)

			_, cmd := v.Update(key("enter"))

			require.NotNil(t, cmd)
			assert.Equal(t, tt.expected, cmd())
		})
	}
}

func TestSidebar_QuitItem(t *testing.T) {
	v := NewView(nil)
	moveTo(t, v, "Quit")

	_, cmd := v.Update(key("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSidebar_EnterOnSectionFocusesEditor(t *testing.T) {
	v := NewView(nil)
	moveTo(t, v, domain.SectionProjects.Label())

	_, cmd := v.Update(key("enter"))

	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	assert.Equal(t, messages.SectionSelected{Section: domain.SectionProjects}, batch[0]())
	assert.Equal(t, messages.FocusEditor{}, batch[1]())
}

func TestSidebar_View(t *testing.T) {
	v := NewView(nil)
	v.SetDocument(domain.DefaultResume())
	v.SetFocused(true)

	view := v.View()
	assert.Contains(t, view, "Skills (8)")
	assert.Contains(t, view, "Certifications (2)")
	assert.Contains(t, view, "Show Preview")
	assert.Contains(t, view, "Save (admin only)")

	v.SetCanEdit(true)
	v.SetPreview(true)
	view = v.View()
	assert.Contains(t, view, "Hide Preview")
	assert.NotContains(t, view, "admin only")
}

func TestSidebar_Reset(t *testing.T) {
	v := NewView(nil)
	v.Update(key("j"))
	v.SetActive(domain.SectionSkills)

	v.Reset()

	assert.Equal(t, 0, v.Selected())
	assert.Equal(t, domain.SectionProfile, v.Active())
}
