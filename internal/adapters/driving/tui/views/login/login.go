// Package login provides the sign-in view shown before the dashboard.
package login

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

const (
	focusUsername = iota
	focusPassword
)

// View is the login form.
type View struct {
	styles *styles.Styles
	access driving.AccessGate
	ctx    context.Context

	username *input.Field
	password *input.Field
	focus    int

	hint    string
	err     error
	pending bool

	width  int
	height int
}

// NewView creates a login view backed by access.
func NewView(s *styles.Styles, access driving.AccessGate) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		access:   access,
		ctx:      context.Background(),
		username: input.NewField(s, "Username"),
		password: input.NewPasswordField(s, "Password"),
		width:    80,
		height:   24,
	}
}

// WithContext sets the context passed to the access gate.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetHint sets a line of help text shown under the form, such as the demo
// accounts.
func (v *View) SetHint(hint string) {
	v.hint = hint
}

// Init focuses the username field.
func (v *View) Init() tea.Cmd {
	return v.setFocus(focusUsername)
}

// Reset clears the form for a new sign-in.
func (v *View) Reset() {
	v.username.Reset()
	v.password.Reset()
	v.err = nil
	v.pending = false
	v.setFocus(focusUsername)
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.LoginCompleted:
		v.pending = false
		if msg.Err != nil {
			v.err = msg.Err
			v.password.Reset()
			return v, v.setFocus(focusPassword)
		}
		v.err = nil
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pending {
		return v, nil
	}

	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		return v, v.setFocus(1 - v.focus)

	case "enter":
		if v.focus == focusUsername {
			return v, v.setFocus(focusPassword)
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	if v.focus == focusUsername {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v *View) setFocus(focus int) tea.Cmd {
	v.focus = focus
	if focus == focusUsername {
		v.password.Blur()
		return v.username.Focus()
	}
	v.username.Blur()
	return v.password.Focus()
}

// submit returns a command that checks the credentials.
func (v *View) submit() tea.Cmd {
	if v.access == nil {
		return nil
	}

	v.pending = true
	v.err = nil
	ctx, access := v.ctx, v.access
	username, password := v.username.Value(), v.password.Value()

	return func() tea.Msg {
		session, err := access.Login(ctx, username, password)
		return messages.LoginCompleted{Session: session, Err: err}
	}
}

// View renders the login form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Resume Dashboard"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Sign in to manage your resume"))
	b.WriteString("\n\n")

	b.WriteString(v.username.View())
	b.WriteString("\n")
	b.WriteString(v.password.View())
	b.WriteString("\n\n")

	switch {
	case v.pending:
		b.WriteString(v.styles.Muted.Render("Signing in..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(errorText(v.err)))
	default:
		b.WriteString(v.styles.Help.Render("[tab] Switch field  [enter] Sign in  [ctrl+c] Quit"))
	}

	if v.hint != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render(v.hint))
	}

	box := v.styles.FocusedPanel.Padding(1, 3).Render(b.String())
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
}

func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many failed attempts. Try again later."
	default:
		return "Sign in failed: " + err.Error()
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.username.SetWidth(width / 2)
	v.password.SetWidth(width / 2)
}

// Username returns the current username input.
func (v *View) Username() string {
	return v.username.Value()
}

// Pending reports whether a sign-in is in flight.
func (v *View) Pending() bool {
	return v.pending
}

// Err returns the last sign-in error.
func (v *View) Err() error {
	return v.err
}
