// Package help provides the key binding reference screen.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
)

// View is the help screen.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	help    help.Model
	canEdit bool
	width   int
	height  int
}

// NewView creates the help screen.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = s.Subtitle
	h.Styles.FullDesc = s.Normal
	h.Styles.FullSeparator = s.Muted

	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		help:   h,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetCanEdit selects the note shown under the bindings.
func (v *View) SetCanEdit(canEdit bool) {
	v.canEdit = canEdit
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
}

// Update returns to the dashboard on esc or ?.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	k := keyMsg.String()
	if keymap.Matches(k, v.keymap.Back) || keymap.Matches(k, v.keymap.Help) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	}
	return v, nil
}

// View renders the help screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(v.help.View(v.keymap))
	b.WriteString("\n\n")

	if v.canEdit {
		b.WriteString(v.styles.Muted.Render("Edits apply immediately and show in the live preview."))
	} else {
		b.WriteString(v.styles.Warning.Render("You are signed in as a viewer. Editing keys are disabled."))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("esc or ? to go back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
