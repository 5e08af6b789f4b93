// Package preview renders the live resume preview and provides the
// scrollable preview pane.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

const (
	// barWidth is the number of cells in a skill bar.
	barWidth = 12

	minWidth = 24
)

// View is the preview pane.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	model    domain.RenderModel
	focused  bool
	width    int
	height   int
}

// NewView creates an empty preview pane.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:   s,
		viewport: viewport.New(60, 20),
		width:    60,
		height:   22,
	}
	v.render()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetModel replaces the rendered model. The scroll position is kept.
func (v *View) SetModel(model domain.RenderModel) {
	v.model = model
	v.render()
}

// Model returns the model being shown.
func (v *View) Model() domain.RenderModel {
	return v.model
}

// SetDimensions sets the pane size including its heading.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-2, 1)
	v.render()
}

// SetFocused marks the preview as the focused panel. Only a focused preview
// scrolls.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Update handles scrolling.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		switch msg.String() {
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	case tea.MouseMsg:
		if !v.focused {
			return v, nil
		}
	default:
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// Offset returns the first visible line.
func (v *View) Offset() int {
	return v.viewport.YOffset
}

func (v *View) render() {
	v.viewport.SetContent(Render(v.model, v.width, v.styles))
}

// View renders the pane.
func (v *View) View() string {
	heading := v.styles.Title.Render("Live Preview")
	if !v.viewport.AtTop() || !v.viewport.AtBottom() {
		heading += v.styles.Muted.Render(fmt.Sprintf("  %3.0f%%", v.viewport.ScrollPercent()*100))
	}
	return heading + "\n\n" + v.viewport.View()
}

// Render draws model as text no wider than width.
func Render(model domain.RenderModel, width int, s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if width < minWidth {
		width = minWidth
	}
	r := renderer{styles: s, width: width}
	return r.render(model)
}

type renderer struct {
	styles *styles.Styles
	width  int
	b      strings.Builder
}

func (r *renderer) render(m domain.RenderModel) string {
	r.header(m.Header)

	if m.Summary != "" {
		r.sectionTitle("Summary")
		r.wrapped(m.Summary, r.styles.Normal, "")
	}

	if len(m.SkillGroups) > 0 {
		r.sectionTitle("Skills")
		for _, g := range m.SkillGroups {
			r.skillGroup(g)
		}
	}

	for _, section := range m.Sections {
		r.sectionTitle(section.Title)
		for i, e := range section.Entries {
			if i > 0 {
				r.b.WriteString("\n")
			}
			r.entry(e)
		}
	}

	return strings.TrimRight(r.b.String(), "\n") + "\n"
}

func (r *renderer) header(h domain.PreviewHeader) {
	name := h.Name
	if name == "" {
		name = "Your Name"
	}
	title := h.Title
	if title == "" {
		title = "Your Title"
	}

	r.wrapped(name, r.styles.Title, "")
	r.wrapped(title, r.styles.Subtitle, "")

	if len(h.Contacts) > 0 {
		values := make([]string, len(h.Contacts))
		for i, c := range h.Contacts {
			values[i] = c.Value
		}
		r.wrapped(strings.Join(values, "  ·  "), r.styles.Muted, "")
	}
}

func (r *renderer) sectionTitle(title string) {
	r.b.WriteString("\n")
	r.line(r.styles.Title.Render(strings.ToUpper(title)))
	r.line(r.styles.Muted.Render(strings.Repeat("─", min(r.width, 40))))
}

func (r *renderer) skillGroup(g domain.SkillGroup) {
	category := g.Category
	if category == "" {
		category = "Other"
	}
	r.line(r.styles.Subtitle.Render(category))

	nameWidth := max(r.width-barWidth-8, 8)
	for _, sk := range g.Skills {
		name := fitWidth(sk.Name, nameWidth)
		filled := barCells(sk.Level, barWidth)
		bar := r.styles.SkillFill.Render(strings.Repeat("█", filled)) +
			r.styles.SkillTrack.Render(strings.Repeat("░", barWidth-filled))
		r.line(fmt.Sprintf("  %s %s %s", name, bar, r.styles.Muted.Render(fmt.Sprintf("%3d%%", sk.Level))))
	}
}

func (r *renderer) entry(e domain.PreviewEntry) {
	if e.Heading != "" {
		r.wrapped(e.Heading, r.styles.Normal.Bold(true), "")
	}
	if e.Subheading != "" {
		r.wrapped(e.Subheading, r.styles.Subtitle, "")
	}
	if e.Meta != "" {
		r.wrapped(e.Meta, r.styles.Muted, "")
	}
	if e.Body != "" {
		r.wrapped(e.Body, r.styles.Normal, "")
	}
	for _, bullet := range e.Bullets {
		r.wrapped(bullet, r.styles.Normal, "  • ")
	}
}

// wrapped writes text word-wrapped to the pane width. Continuation lines
// are indented to line up under the first.
func (r *renderer) wrapped(text string, style lipgloss.Style, prefix string) {
	indent := strings.Repeat(" ", lipgloss.Width(prefix))
	body := style.Width(r.width - len(indent)).Render(text)
	for i, l := range strings.Split(body, "\n") {
		if i == 0 {
			r.line(prefix + strings.TrimRight(l, " "))
			continue
		}
		r.line(indent + strings.TrimRight(l, " "))
	}
}

func (r *renderer) line(s string) {
	r.b.WriteString(s)
	r.b.WriteString("\n")
}

// barCells returns how many of width cells a level fills. Levels outside
// 0..100 are drawn as empty or full.
func barCells(level, width int) int {
	switch {
	case level <= 0:
		return 0
	case level >= domain.MaxSkillLevel:
		return width
	}
	return (level*width + domain.MaxSkillLevel/2) / domain.MaxSkillLevel
}

// fitWidth pads or truncates s to exactly width cells.
func fitWidth(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
