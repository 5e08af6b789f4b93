// Package editor provides the section editor panel: a card per record with
// one row per field, edited in place.
package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// labelWidth is the column the field values start at.
const labelWidth = 22

// View is the section editor.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	store  driving.DocumentStore
	forms  map[domain.Section]form

	section domain.Section
	rows    []row
	cursor  int
	offset  int

	editing bool
	input   *input.Field

	canEdit bool
	focused bool
	width   int
	height  int
}

// NewView creates an editor over store. Mutations go through editors.
func NewView(s *styles.Styles, store driving.DocumentStore, editors Editors) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		store:   store,
		forms:   newForms(editors),
		section: domain.SectionProfile,
		input:   input.NewField(s, ""),
		width:   60,
		height:  24,
	}
	v.Refresh()
	return v
}

// Init initialises the editor.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSection switches the editor to section and resets the cursor.
func (v *View) SetSection(section domain.Section) {
	if _, ok := v.forms[section]; !ok {
		return
	}
	v.cancelEdit()
	v.section = section
	v.cursor = 0
	v.offset = 0
	v.Refresh()
}

// Refresh rebuilds the rows from the current document.
func (v *View) Refresh() {
	if v.store == nil {
		v.rows = nil
		return
	}
	v.rows = v.forms[v.section].rows(v.store.Get())
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.scrollToCursor()
}

// Update handles messages for the editor.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.editing {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.editing {
		return v.handleEditingKey(keyMsg)
	}
	return v.handleKey(keyMsg)
}

func (v *View) handleEditingKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.commit()
		return v, nil
	case "esc":
		v.cancelEdit()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

//nolint:gocyclo // one case per binding
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	f := v.forms[v.section]

	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		v.scrollToCursor()
		return v, nil

	case keymap.Matches(k, v.keymap.Down):
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}
		v.scrollToCursor()
		return v, nil

	case keymap.Matches(k, v.keymap.Select):
		r, ok := v.current()
		if !ok || !r.editable() {
			return v, nil
		}
		if !v.canEdit {
			return v, viewOnly
		}
		return v, v.startEdit(r)

	case keymap.Matches(k, v.keymap.Add) && f.add != nil:
		if !v.canEdit {
			return v, viewOnly
		}
		id := f.add()
		v.Refresh()
		v.moveTo(func(r row) bool { return r.recordID == id && r.kind == rowField })
		return v, nil

	case keymap.Matches(k, v.keymap.Delete) && f.remove != nil:
		r, ok := v.current()
		if !ok {
			return v, nil
		}
		if !v.canEdit {
			return v, viewOnly
		}
		f.remove(r.recordID)
		v.Refresh()
		return v, nil

	case keymap.Matches(k, v.keymap.AddHighlight) && f.addHighlight != nil:
		r, ok := v.current()
		if !ok {
			return v, nil
		}
		if !v.canEdit {
			return v, viewOnly
		}
		f.addHighlight(r.recordID)
		v.Refresh()
		v.moveToLastHighlight(r.recordID)
		return v, nil

	case keymap.Matches(k, v.keymap.RemoveHighlight) && f.removeHighlight != nil:
		r, ok := v.current()
		if !ok || r.kind != rowHighlight {
			return v, nil
		}
		if !v.canEdit {
			return v, viewOnly
		}
		f.removeHighlight(r.recordID, r.index)
		v.Refresh()
		return v, nil

	case keymap.Matches(k, v.keymap.LevelUp) && f.setLevel != nil:
		return v, v.stepLevel(keymap.SkillLevelStep)

	case keymap.Matches(k, v.keymap.LevelDown) && f.setLevel != nil:
		return v, v.stepLevel(-keymap.SkillLevelStep)
	}

	return v, nil
}

func viewOnly() tea.Msg {
	return messages.ViewOnly{}
}

func (v *View) stepLevel(delta int) tea.Cmd {
	r, ok := v.current()
	if !ok {
		return nil
	}
	if !v.canEdit {
		return viewOnly
	}
	f := v.forms[v.section]
	level, ok := f.level(v.store.Get(), r.recordID)
	if !ok {
		return nil
	}
	f.setLevel(r.recordID, domain.ClampInputLevel(level+delta))
	v.Refresh()
	return nil
}

func (v *View) startEdit(r row) tea.Cmd {
	v.editing = true
	v.input.SetLabel(r.label)
	v.input.SetValue(r.value)
	v.input.SetWidth(v.width)
	return v.input.Focus()
}

func (v *View) commit() {
	r, ok := v.current()
	value := v.input.Value()
	v.cancelEdit()
	if !ok || !v.canEdit {
		return
	}
	v.forms[v.section].set(r, value)
	v.Refresh()
}

func (v *View) cancelEdit() {
	v.editing = false
	v.input.Blur()
	v.input.Reset()
}

func (v *View) current() (row, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return row{}, false
	}
	return v.rows[v.cursor], true
}

func (v *View) moveTo(match func(row) bool) {
	for i, r := range v.rows {
		if match(r) {
			v.cursor = i
			v.scrollToCursor()
			return
		}
	}
}

func (v *View) moveToLastHighlight(id int64) {
	for i := len(v.rows) - 1; i >= 0; i-- {
		if r := v.rows[i]; r.recordID == id && r.kind == rowHighlight {
			v.cursor = i
			v.scrollToCursor()
			return
		}
	}
}

// visibleRows is the number of rows that fit below the heading.
func (v *View) visibleRows() int {
	n := v.height - 4
	if n < 1 {
		n = 1
	}
	return n
}

func (v *View) scrollToCursor() {
	visible := v.visibleRows()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// View renders the editor.
func (v *View) View() string {
	var b strings.Builder

	heading := v.section.Label()
	if v.section.IsCollection() {
		heading = fmt.Sprintf("%s (%d)", heading, v.countRecords())
	}
	b.WriteString(v.styles.Title.Render(heading))
	if !v.canEdit {
		b.WriteString("  ")
		b.WriteString(v.styles.Warning.Render("view only"))
	}
	b.WriteString("\n\n")

	if len(v.rows) == 0 {
		b.WriteString(v.styles.Muted.Render("No entries yet."))
		if v.canEdit {
			b.WriteString(v.styles.Muted.Render(" Press a to add one."))
		}
		b.WriteString("\n")
		return b.String()
	}

	end := v.offset + v.visibleRows()
	if end > len(v.rows) {
		end = len(v.rows)
	}
	for i := v.offset; i < end; i++ {
		b.WriteString(v.renderRow(i, v.rows[i]))
		b.WriteString("\n")
	}

	if len(v.rows) > v.visibleRows() {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d/%d", v.cursor+1, len(v.rows))))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderRow(i int, r row) string {
	selected := i == v.cursor && v.focused

	if selected && v.editing {
		return v.input.View()
	}

	if r.kind == rowRecord {
		line := truncate("▸ "+r.value, v.width)
		if selected {
			return v.styles.Selected.Render(line)
		}
		return v.styles.Subtitle.Render(line)
	}

	indent := "  "
	switch {
	case r.kind == rowHighlight:
		indent = "    "
	case !v.section.IsCollection():
		indent = ""
	}

	value, empty := v.displayValue(r)
	if selected {
		line := fmt.Sprintf("%s%-*s%s", indent, labelWidth, r.label, value)
		return v.styles.Selected.Render(truncate(line, v.width))
	}

	label := fmt.Sprintf("%-*s", labelWidth, r.label)
	value = truncate(value, v.width-len(indent)-labelWidth)
	valueStyle := v.styles.Normal
	if empty {
		valueStyle = v.styles.Muted
	}
	return indent + v.styles.Label.Render(label) + valueStyle.Render(value)
}

// displayValue returns the text shown for r and whether it is a stand-in
// for an empty value.
func (v *View) displayValue(r row) (string, bool) {
	switch {
	case r.value == "" && r.hint != "":
		return r.hint, true
	case r.value == "":
		return "—", true
	case r.field == string(domain.SkillLevel) && v.section == domain.SectionSkills:
		return r.value + "%", false
	default:
		return r.value, false
	}
}

func (v *View) countRecords() int {
	if v.store == nil {
		return 0
	}
	return v.store.Get().Count(v.section)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// SetCanEdit enables or disables mutations.
func (v *View) SetCanEdit(canEdit bool) {
	v.canEdit = canEdit
	if !canEdit {
		v.cancelEdit()
	}
}

// SetFocused marks the editor as the focused panel.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
	if !focused {
		v.cancelEdit()
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.scrollToCursor()
}

// Section returns the section being edited.
func (v *View) Section() domain.Section {
	return v.section
}

// Editing reports whether an input is open.
func (v *View) Editing() bool {
	return v.editing
}

// Cursor returns the index of the row under the cursor.
func (v *View) Cursor() int {
	return v.cursor
}

// RowCount returns the number of rows in the form.
func (v *View) RowCount() int {
	return len(v.rows)
}
