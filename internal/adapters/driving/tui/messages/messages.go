// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// ViewChanged is sent when navigating between top-level views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which top-level view is active.
type ViewType int

const (
	// ViewLogin is the sign-in form shown before the dashboard.
	ViewLogin ViewType = iota
	// ViewDashboard is the sidebar, editor and preview layout.
	ViewDashboard
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewDashboard:
		return "dashboard"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// LoginCompleted carries the result of a sign-in attempt.
type LoginCompleted struct {
	Session *domain.Session
	Err     error
}

// LoggedOut ends the current session and returns to the login form.
type LoggedOut struct{}

// SectionSelected is sent when a section is chosen in the sidebar.
type SectionSelected struct {
	Section domain.Section
}

// FocusEditor asks the dashboard to move focus to the editor panel.
type FocusEditor struct{}

// PreviewToggled flips the preview pane.
type PreviewToggled struct{}

// SaveRequested asks the dashboard to run the save hook.
type SaveRequested struct{}

// SaveCompleted carries the result of a save.
type SaveCompleted struct {
	Receipt domain.SaveReceipt
	Err     error
}

// FlashExpired clears a transient status message. Seq identifies the flash
// so that an older timer does not clear a newer message.
type FlashExpired struct {
	Seq int
}

// DocumentChanged reports that the store holds a new document.
type DocumentChanged struct {
	Revision uint64
}

// ViewOnly is sent when a viewer attempts an edit.
type ViewOnly struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
