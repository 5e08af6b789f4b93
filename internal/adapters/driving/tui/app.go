package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/views/login"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/views/sidebar"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// FlashDuration is how long transient status messages stay visible.
const FlashDuration = 2500 * time.Millisecond

const (
	sidebarWidth   = 26
	minEditorWidth = 40
)

// Panel identifies the focused dashboard panel.
type Panel int

const (
	PanelSidebar Panel = iota
	PanelEditor
	PanelPreview
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	loginView   *login.View
	sidebarView *sidebar.View
	editorView  *editor.View
	previewView *preview.View
	helpView    *help.View
	statusBar   *status.Bar

	currentView messages.ViewType
	session     *domain.Session
	focus       Panel

	showPreview  bool
	previewStart bool
	previewWidth int

	// seed is the document the store held when the app was created. Logging
	// out discards the session's edits by restoring it.
	seed domain.Resume

	// revision is the store revision the panels were last synced to.
	revision uint64
	synced   bool

	// changes carries store revisions from subscribers to the update loop.
	changes     chan uint64
	unsubscribe func()

	flashSeq int
	err      error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		loginView:   login.NewView(s, ports.Access),
		sidebarView: sidebar.NewView(s),
		editorView: editor.NewView(s, ports.Store, editor.Editors{
			Profile:        ports.Profile,
			Skills:         ports.Skills,
			Experience:     ports.Experience,
			Education:      ports.Education,
			Projects:       ports.Projects,
			Certifications: ports.Certifications,
		}),
		previewView:  preview.NewView(s),
		helpView:     help.NewView(s),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewLogin,
		previewWidth: domain.DefaultPreviewWidth,
		seed:         ports.Store.Get(),
		changes:      make(chan uint64, 1),
	}

	a.loginView.Reset()
	a.loadSettings()
	a.unsubscribe = ports.Store.Subscribe(a.notify)
	a.sync()

	return a, nil
}

func (a *App) loadSettings() {
	if a.ports.Settings == nil {
		return
	}
	settings, err := a.ports.Settings.Get()
	if err != nil {
		logger.Warn("tui: load settings: %v", err)
		return
	}
	a.previewStart = settings.Preview.ShowOnStart
	if settings.Preview.Width > 0 {
		a.previewWidth = settings.Preview.Width
	}
}

// notify runs as a store subscriber. It may be called from any goroutine,
// including from inside Update, so it never blocks. A pending revision is
// replaced by the newer one.
func (a *App) notify(domain.Resume) {
	rev := a.ports.Store.Revision()
	for {
		select {
		case a.changes <- rev:
			return
		default:
		}
		select {
		case <-a.changes:
		default:
		}
	}
}

// waitForChange delivers the next store revision as a DocumentChanged.
func (a *App) waitForChange() tea.Cmd {
	changes, ctx := a.changes, a.ctx
	return func() tea.Msg {
		select {
		case rev := <-changes:
			return messages.DocumentChanged{Revision: rev}
		case <-ctx.Done():
			return nil
		}
	}
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.loginView.WithContext(ctx)
	return a
}

// WithLoginHint sets the help line shown under the login form.
func (a *App) WithLoginHint(hint string) *App {
	a.loginView.SetHint(hint)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("resumedesk"),
		a.loginView.Init(),
		a.waitForChange(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.LoginCompleted:
		var cmd tea.Cmd
		a.loginView, cmd = a.loginView.Update(msg)
		if msg.Err != nil || msg.Session == nil {
			logger.Debug("tui: login failed: %v", msg.Err)
			return a, cmd
		}
		a.startSession(msg.Session)
		return a, cmd

	case messages.LoggedOut:
		return a, a.endSession()

	case messages.ViewChanged:
		a.currentView = msg.View
		a.refreshStatus()
		return a, nil

	case messages.SectionSelected:
		a.editorView.SetSection(msg.Section)
		a.sidebarView.SetActive(a.editorView.Section())
		return a, nil

	case messages.FocusEditor:
		a.setFocus(PanelEditor)
		return a, nil

	case messages.PreviewToggled:
		a.togglePreview()
		return a, nil

	case messages.SaveRequested:
		return a, a.save()

	case messages.SaveCompleted:
		if msg.Err != nil {
			a.err = msg.Err
			return a, a.flash(status.StateError, msg.Err.Error())
		}
		logger.Debug("tui: saved revision %d", msg.Receipt.Revision)
		return a, a.flash(status.StateSaved, "")

	case messages.FlashExpired:
		if msg.Seq == a.flashSeq {
			a.statusBar.Clear()
			a.refreshStatus()
		}
		return a, nil

	case messages.DocumentChanged:
		a.sync()
		return a, a.waitForChange()

	case messages.ViewOnly:
		return a, a.flash(status.StateError, "viewers cannot make changes")

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.flash(status.StateError, msg.Err.Error())

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewDashboard:
		if a.focus == PanelEditor {
			a.editorView, cmd = a.editorView.Update(msg)
		}
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)
		return a, cmd

	case messages.ViewDashboard:
		return a.handleDashboardKey(msg)
	}
	return a, nil
}

//nolint:gocyclo // one case per binding
func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// An open input gets every key.
	if a.focus == PanelEditor && a.editorView.Editing() {
		return a, a.forwardToEditor(msg)
	}

	switch {
	case keymap.Matches(k, a.keymap.Help):
		a.currentView = messages.ViewHelp
		a.refreshStatus()
		return a, nil

	case keymap.Matches(k, a.keymap.SwitchFocus):
		a.cycleFocus()
		return a, nil

	case keymap.Matches(k, a.keymap.TogglePreview):
		a.togglePreview()
		return a, nil

	case keymap.Matches(k, a.keymap.Save):
		return a, a.save()

	case keymap.Matches(k, a.keymap.Back) && a.focus != PanelSidebar:
		a.setFocus(PanelSidebar)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case PanelSidebar:
		a.sidebarView, cmd = a.sidebarView.Update(msg)
	case PanelEditor:
		cmd = a.forwardToEditor(msg)
	case PanelPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	}
	return a, cmd
}

// forwardToEditor passes msg to the editor and brings the other panels up
// to date with any edit it made.
func (a *App) forwardToEditor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.editorView, cmd = a.editorView.Update(msg)
	a.sync()
	a.refreshStatus()
	return cmd
}

func (a *App) startSession(session *domain.Session) {
	a.session = session
	canEdit := session.CanEdit()

	a.editorView.SetCanEdit(canEdit)
	a.sidebarView.SetCanEdit(canEdit)
	a.helpView.SetCanEdit(canEdit)
	a.statusBar.SetUser(&session.User)
	a.statusBar.Clear()

	a.sidebarView.Reset()
	a.editorView.SetSection(domain.SectionProfile)
	a.showPreview = a.previewStart
	a.sidebarView.SetPreview(a.showPreview)

	a.currentView = messages.ViewDashboard
	a.setFocus(PanelSidebar)
	a.synced = false
	a.sync()
	a.layout()
	a.refreshStatus()

	logger.Event("session_start", "user", session.User.Username, "role", session.User.Role.String())
}

func (a *App) endSession() tea.Cmd {
	if a.session != nil {
		logger.Event("session_end", "user", a.session.User.Username)
	}
	a.session = nil
	a.editorView.SetCanEdit(false)
	a.sidebarView.SetCanEdit(false)
	a.helpView.SetCanEdit(false)
	a.statusBar.SetUser(nil)
	a.statusBar.Clear()
	a.flashSeq++

	a.ports.Store.Replace(a.seed)
	a.sync()

	a.currentView = messages.ViewLogin
	a.loginView.Reset()
	return a.loginView.Init()
}

// sync refreshes every panel from the store when its revision moved.
func (a *App) sync() {
	rev := a.ports.Store.Revision()
	if a.synced && rev == a.revision {
		return
	}
	doc := a.ports.Store.Get()

	a.editorView.Refresh()
	a.sidebarView.SetDocument(doc)
	a.previewView.SetModel(a.ports.Preview.Project(doc))
	a.statusBar.SetRevision(rev)

	a.revision = rev
	a.synced = true
}

func (a *App) setFocus(p Panel) {
	if p == PanelPreview && !a.showPreview {
		p = PanelSidebar
	}
	a.focus = p
	a.sidebarView.SetFocused(p == PanelSidebar)
	a.editorView.SetFocused(p == PanelEditor)
	a.previewView.SetFocused(p == PanelPreview)
	a.refreshStatus()
}

func (a *App) cycleFocus() {
	switch a.focus {
	case PanelSidebar:
		a.setFocus(PanelEditor)
	case PanelEditor:
		if a.showPreview {
			a.setFocus(PanelPreview)
			return
		}
		a.setFocus(PanelSidebar)
	default:
		a.setFocus(PanelSidebar)
	}
}

func (a *App) togglePreview() {
	a.showPreview = !a.showPreview
	a.sidebarView.SetPreview(a.showPreview)
	if !a.showPreview && a.focus == PanelPreview {
		a.setFocus(PanelSidebar)
	}
	a.layout()
}

func (a *App) save() tea.Cmd {
	if !a.session.CanEdit() {
		return a.flash(status.StateError, "viewers cannot make changes")
	}
	ctx, svc := a.ctx, a.ports.Save
	return func() tea.Msg {
		receipt, err := svc.Save(ctx)
		return messages.SaveCompleted{Receipt: receipt, Err: err}
	}
}

// flash shows a transient status and schedules its removal.
func (a *App) flash(state status.State, message string) tea.Cmd {
	a.flashSeq++
	seq := a.flashSeq
	a.statusBar.SetState(state)
	a.statusBar.SetMessage(message)
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return messages.FlashExpired{Seq: seq}
	})
}

// refreshStatus sets the persistent status state unless a flash is
// showing.
func (a *App) refreshStatus() {
	switch a.statusBar.State() {
	case status.StateSaved, status.StateError:
		return
	}

	switch {
	case a.currentView == messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case a.focus == PanelEditor && a.editorView.Editing():
		a.statusBar.SetState(status.StateEditing)
	case a.session != nil && !a.session.CanEdit():
		a.statusBar.SetState(status.StateViewOnly)
	default:
		a.statusBar.SetState(status.StateReady)
	}
}

// layout sizes the panels to the terminal.
func (a *App) layout() {
	if !a.ready {
		return
	}
	side, edit, prev := a.panelWidths()
	height := a.panelHeight()
	inner := func(w int) int { return max(w-4, 1) }

	a.sidebarView.SetDimensions(inner(side), height)
	a.editorView.SetDimensions(inner(edit), height)
	a.previewView.SetDimensions(inner(max(prev, 24)), height)
	a.statusBar.SetWidth(a.width)
}

// panelWidths splits the width between the panels. The preview shrinks
// before the editor does.
func (a *App) panelWidths() (side, edit, prev int) {
	side = sidebarWidth
	if a.showPreview {
		prev = max(min(a.previewWidth, a.width-sidebarWidth-minEditorWidth), 24)
	}
	edit = max(a.width-side-prev, minEditorWidth)
	return side, edit, prev
}

// panelHeight is the content height inside a panel border, leaving a line
// for the status bar.
func (a *App) panelHeight() int {
	return max(a.height-3, 1)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewHelp:
		return lipgloss.JoinVertical(lipgloss.Left, a.helpView.View(), a.statusBar.View())
	default:
		return a.viewDashboard()
	}
}

func (a *App) viewDashboard() string {
	side, edit, prev := a.panelWidths()
	height := a.panelHeight()

	panels := []string{
		a.panel(a.sidebarView.View(), side, height, a.focus == PanelSidebar),
		a.panel(a.editorView.View(), edit, height, a.focus == PanelEditor),
	}
	if a.showPreview {
		panels = append(panels, a.panel(a.previewView.View(), prev, height, a.focus == PanelPreview))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())
}

func (a *App) panel(content string, width, height int, focused bool) string {
	style := a.styles.Panel
	if focused {
		style = a.styles.FocusedPanel
	}
	return style.Width(width - 2).Height(height).MaxHeight(height + 2).Render(content)
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Close detaches the app from the store.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Session returns the signed-in session, or nil.
func (a *App) Session() *domain.Session {
	return a.session
}

// Focus returns the focused dashboard panel.
func (a *App) Focus() Panel {
	return a.focus
}

// PreviewVisible reports whether the preview pane is open.
func (a *App) PreviewVisible() bool {
	return a.showPreview
}

// StatusState returns the state shown in the status bar.
func (a *App) StatusState() status.State {
	return a.statusBar.State()
}

// Revision returns the store revision the panels show.
func (a *App) Revision() uint64 {
	return a.revision
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.loginView.SetDimensions(width, height)
	a.helpView.SetDimensions(width, height-1)
	a.layout()
}

// Editor returns the editor panel.
func (a *App) Editor() *editor.View {
	return a.editorView
}

// Sidebar returns the sidebar panel.
func (a *App) Sidebar() *sidebar.View {
	return a.sidebarView
}

// Preview returns the preview panel.
func (a *App) Preview() *preview.View {
	return a.previewView
}
