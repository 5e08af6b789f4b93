// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// State represents the current dashboard state for display.
type State string

const (
	StateReady    State = "ready"
	StateEditing  State = "editing"
	StateSaved    State = "saved"
	StateError    State = "error"
	StateViewOnly State = "view_only"
	StateHelp     State = "help"
)

// Bar displays the signed-in user, the document revision, a transient
// message and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	user     *domain.User
	revision uint64
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// Width includes the style's horizontal padding.
	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Hints go first when the bar is too narrow.
		right = ""
		padding = max(inner-lipgloss.Width(left), 0)
	}

	return s.styles.StatusBar.Width(s.width).MaxHeight(1).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	var parts []string

	if s.user != nil {
		name := s.user.Name
		if name == "" {
			name = s.user.Username
		}
		parts = append(parts, s.styles.Normal.Render(name), s.styles.Badge.Render(s.user.Role.String()))
	}

	switch s.state {
	case StateSaved:
		parts = append(parts, s.styles.Success.Render("Saved!"))
	case StateError:
		msg := "Error"
		if s.message != "" {
			msg = fmt.Sprintf("Error: %s", s.message)
		}
		parts = append(parts, s.styles.Error.Render(msg))
	case StateViewOnly:
		parts = append(parts, s.styles.Warning.Render("View only"))
	case StateEditing:
		parts = append(parts, s.styles.Normal.Render("Editing"))
	case StateHelp:
		parts = append(parts, s.styles.Normal.Render("Help"))
	case StateReady:
		if s.message != "" {
			parts = append(parts, s.styles.Muted.Render(s.message))
		}
	}

	if s.revision > 0 {
		parts = append(parts, s.styles.Muted.Render(fmt.Sprintf("rev %d", s.revision)))
	}
	return strings.Join(parts, " ")
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case s.user != nil && !s.user.Role.CanEdit():
		bindings = s.keymap.ViewOnlyHelp()
	case s.state == StateEditing:
		bindings = []key.Binding{s.keymap.Select, s.keymap.Back}
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetUser sets the signed-in user. nil clears it.
func (s *Bar) SetUser(user *domain.User) {
	s.user = user
}

// SetRevision sets the document revision shown on the left.
func (s *Bar) SetRevision(revision uint64) {
	s.revision = revision
}

// Revision returns the displayed revision.
func (s *Bar) Revision() uint64 {
	return s.revision
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
