// Package sidebar provides the dashboard navigation panel.
package sidebar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// Action is what selecting a non-section item does.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePreview
	ActionSave
	ActionLogout
	ActionQuit
)

// Item represents a single sidebar entry.
type Item struct {
	Label   string
	Section domain.Section
	Action  Action
}

// IsSection reports whether the item opens a section.
func (i Item) IsSection() bool {
	return i.Action == ActionNone
}

// View is the sidebar panel.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	active   domain.Section
	counts   map[domain.Section]int
	canEdit  bool
	preview  bool
	focused  bool
	width    int
	height   int
}

// NewView creates a sidebar listing every section followed by the actions.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, len(domain.AllSections())+4)
	for _, sec := range domain.AllSections() {
		items = append(items, Item{Label: sec.Label(), Section: sec})
	}
	items = append(items,
		Item{Label: "Preview", Action: ActionTogglePreview},
		Item{Label: "Save", Action: ActionSave},
		Item{Label: "Logout", Action: ActionLogout},
		Item{Label: "Quit", Action: ActionQuit},
	)

	return &View{
		styles: s,
		items:  items,
		active: domain.SectionProfile,
		counts: make(map[domain.Section]int),
		width:  24,
		height: 24,
	}
}

// Init initialises the sidebar.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sidebar.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, v.followSelection()

	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
		}
		return v, v.followSelection()

	case "enter":
		return v, v.activate(v.items[v.selected])
	}

	return v, nil
}

// followSelection opens the section under the cursor as it moves.
func (v *View) followSelection() tea.Cmd {
	item := v.items[v.selected]
	if !item.IsSection() || item.Section == v.active {
		return nil
	}
	return emit(messages.SectionSelected{Section: item.Section})
}

func (v *View) activate(item Item) tea.Cmd {
	switch item.Action {
	case ActionTogglePreview:
		return emit(messages.PreviewToggled{})
	case ActionSave:
		if !v.canEdit {
			return emit(messages.ViewOnly{})
		}
		return emit(messages.SaveRequested{})
	case ActionLogout:
		return emit(messages.LoggedOut{})
	case ActionQuit:
		return tea.Quit
	default:
		section := item.Section
		return tea.Batch(
			emit(messages.SectionSelected{Section: section}),
			emit(messages.FocusEditor{}),
		)
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the sidebar.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Sections"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == len(domain.AllSections()) {
			b.WriteString("\n")
		}

		label := v.label(item)
		cursor := "  "
		if i == v.selected && v.focused {
			cursor = "> "
		}

		switch {
		case i == v.selected && v.focused:
			label = v.styles.Selected.Render(label)
		case item.IsSection() && item.Section == v.active:
			label = v.styles.Subtitle.Render(label)
		case item.Action == ActionSave && !v.canEdit:
			label = v.styles.Muted.Render(label)
		default:
			label = v.styles.Normal.Render(label)
		}

		b.WriteString(cursor + label + "\n")
	}

	return b.String()
}

func (v *View) label(item Item) string {
	switch {
	case item.IsSection() && item.Section.IsCollection():
		return fmt.Sprintf("%s (%d)", item.Label, v.counts[item.Section])
	case item.Action == ActionTogglePreview && v.preview:
		return "Hide Preview"
	case item.Action == ActionTogglePreview:
		return "Show Preview"
	case item.Action == ActionSave && !v.canEdit:
		return "Save (admin only)"
	default:
		return item.Label
	}
}

// SetDocument refreshes the record counts shown next to each section.
func (v *View) SetDocument(doc domain.Resume) {
	for _, sec := range domain.AllSections() {
		v.counts[sec] = doc.Count(sec)
	}
}

// SetActive marks the section shown in the editor.
func (v *View) SetActive(section domain.Section) {
	v.active = section
}

// Active returns the section shown in the editor.
func (v *View) Active() domain.Section {
	return v.active
}

// SetCanEdit toggles the admin-only entries.
func (v *View) SetCanEdit(canEdit bool) {
	v.canEdit = canEdit
}

// SetPreview records whether the preview pane is open.
func (v *View) SetPreview(open bool) {
	v.preview = open
}

// SetFocused marks the sidebar as the focused panel.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Reset moves the cursor back to the first section.
func (v *View) Reset() {
	v.selected = 0
	v.active = domain.SectionProfile
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedItem returns the item under the cursor.
func (v *View) SelectedItem() Item {
	return v.items[v.selected]
}
