package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/services"
)

var (
	adminSession = &domain.Session{
		ID:   "admin-session",
		User: domain.User{Username: "admin", Name: "Chaitanya (Admin)", Role: domain.RoleAdmin},
	}
	viewerSession = &domain.Session{
		ID:   "viewer-session",
		User: domain.User{Username: "viewer", Name: "Guest Viewer", Role: domain.RoleViewer},
	}
)

func newTestApp(t *testing.T, ports *Ports) *App {
	t.Helper()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(160, 50)
	t.Cleanup(app.Close)
	return app
}

func signedIn(t *testing.T, session *domain.Session) (*App, *services.DocumentStore, *memory.SaveRecorder) {
	t.Helper()
	ports, store, recorder := testPorts(t)
	app := newTestApp(t, ports)
	send(app, messages.LoginCompleted{Session: session})
	require.Equal(t, messages.ViewDashboard, app.CurrentView())
	return app, store, recorder
}

func send(app *App, msg tea.Msg) tea.Cmd {
	_, cmd := app.Update(msg)
	return cmd
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func typeText(app *App, s string) {
	for _, r := range s {
		send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingDocumentStore)
}

func TestApp_StartsOnLogin(t *testing.T) {
	ports, _, _ := testPorts(t)
	app := newTestApp(t, ports)

	assert.Equal(t, messages.ViewLogin, app.CurrentView())
	assert.Nil(t, app.Session())
	assert.Contains(t, app.View(), "Resume Dashboard")
}

func TestApp_ViewBeforeWindowSize(t *testing.T) {
	ports, _, _ := testPorts(t)
	app, err := NewApp(ports)
	require.NoError(t, err)
	defer app.Close()

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_LoginFlow(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		canEdit  bool
	}{
		{"admin", "admin", memory.DemoAdminPassword, true},
		{"viewer", "viewer", memory.DemoViewerPassword, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, _, _ := testPorts(t)
			app := newTestApp(t, ports)

			typeText(app, tt.username)
			send(app, key("enter"))
			typeText(app, tt.password)
			cmd := send(app, key("enter"))
			require.NotNil(t, cmd)

			send(app, cmd())

			require.Equal(t, messages.ViewDashboard, app.CurrentView())
			require.NotNil(t, app.Session())
			assert.Equal(t, tt.username, app.Session().User.Username)
			assert.Equal(t, tt.canEdit, app.Session().CanEdit())
			assert.Equal(t, PanelSidebar, app.Focus())
		})
	}
}

func TestApp_LoginFailureStaysOnLogin(t *testing.T) {
	ports, _, _ := testPorts(t)
	app := newTestApp(t, ports)

	typeText(app, "admin")
	send(app, key("enter"))
	typeText(app, "wrong")
	cmd := send(app, key("enter"))
	require.NotNil(t, cmd)

	send(app, cmd())

	assert.Equal(t, messages.ViewLogin, app.CurrentView())
	assert.Nil(t, app.Session())
	assert.Contains(t, app.View(), "Invalid username or password")
}

func TestApp_AdminEditRefreshesPanels(t *testing.T) {
	app, store, _ := signedIn(t, adminSession)

	send(app, key("tab"))
	require.Equal(t, PanelEditor, app.Focus())

	send(app, key("enter"))
	require.True(t, app.Editor().Editing())
	assert.Equal(t, status.StateEditing, app.StatusState())

	send(app, key("ctrl+u"))
	typeText(app, "Ada Lovelace")
	send(app, key("enter"))

	assert.False(t, app.Editor().Editing())
	assert.Equal(t, "Ada Lovelace", store.Get().Profile.Name)
	assert.Equal(t, uint64(1), app.Revision())
	assert.Equal(t, "Ada Lovelace", app.Preview().Model().Header.Name)
	assert.Equal(t, status.StateReady, app.StatusState())
}

func TestApp_AddRecordUpdatesSidebarCount(t *testing.T) {
	app, store, _ := signedIn(t, adminSession)

	send(app, messages.SectionSelected{Section: domain.SectionSkills})
	send(app, messages.FocusEditor{})
	send(app, key("a"))

	assert.Len(t, store.Get().Skills, 9)
	assert.Contains(t, app.Sidebar().View(), "Skills (9)")
	assert.Len(t, app.Preview().Model().SkillGroups[len(app.Preview().Model().SkillGroups)-1].Skills, 1)
}

func TestApp_ViewerCannotEdit(t *testing.T) {
	app, store, recorder := signedIn(t, viewerSession)
	assert.Equal(t, status.StateViewOnly, app.StatusState())

	send(app, key("tab"))
	cmd := send(app, key("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, messages.ViewOnly{}, msg)

	send(app, msg)
	assert.Equal(t, status.StateError, app.StatusState())

	send(app, key("a"))
	send(app, key("ctrl+s"))

	assert.Equal(t, uint64(0), store.Revision())
	assert.Equal(t, 0, recorder.Count())
	assert.False(t, app.Editor().Editing())
}

func TestApp_Save(t *testing.T) {
	app, _, recorder := signedIn(t, adminSession)

	cmd := send(app, key("ctrl+s"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, messages.SaveCompleted{}, msg)

	send(app, msg)

	assert.Equal(t, status.StateSaved, app.StatusState())
	assert.Equal(t, 1, recorder.Count())
}

func TestApp_SaveFlashExpires(t *testing.T) {
	app, _, _ := signedIn(t, adminSession)
	send(app, messages.SaveCompleted{})
	require.Equal(t, status.StateSaved, app.StatusState())

	send(app, messages.FlashExpired{Seq: app.flashSeq - 1})
	assert.Equal(t, status.StateSaved, app.StatusState(), "a stale timer keeps the newer flash")

	send(app, messages.FlashExpired{Seq: app.flashSeq})
	assert.Equal(t, status.StateReady, app.StatusState())
}

func TestApp_SaveError(t *testing.T) {
	ports, _, _ := testPorts(t)
	ports.Save = &MockSaveService{
		SaveFunc: func(context.Context) (domain.SaveReceipt, error) {
			return domain.SaveReceipt{}, errors.New("disk full")
		},
	}
	app := newTestApp(t, ports)
	send(app, messages.LoginCompleted{Session: adminSession})

	cmd := send(app, messages.SaveRequested{})
	require.NotNil(t, cmd)
	send(app, cmd())

	assert.Equal(t, status.StateError, app.StatusState())
	assert.EqualError(t, app.Err(), "disk full")
}

func TestApp_FocusCycle(t *testing.T) {
	app, _, _ := signedIn(t, adminSession)

	send(app, key("tab"))
	assert.Equal(t, PanelEditor, app.Focus())
	send(app, key("tab"))
	assert.Equal(t, PanelSidebar, app.Focus(), "preview is skipped while hidden")

	send(app, key("p"))
	require.True(t, app.PreviewVisible())

	send(app, key("tab"))
	send(app, key("tab"))
	assert.Equal(t, PanelPreview, app.Focus())

	send(app, key("p"))
	assert.False(t, app.PreviewVisible())
	assert.Equal(t, PanelSidebar, app.Focus())
}

func TestApp_EscReturnsToSidebar(t *testing.T) {
	app, _, _ := signedIn(t, adminSession)
	send(app, key("tab"))

	send(app, key("esc"))

	assert.Equal(t, PanelSidebar, app.Focus())
}

func TestApp_KeysGoToOpenInput(t *testing.T) {
	app, store, _ := signedIn(t, adminSession)
	send(app, key("tab"))
	send(app, key("enter"))
	send(app, key("ctrl+u"))

	typeText(app, "p?")
	assert.False(t, app.PreviewVisible())
	assert.Equal(t, messages.ViewDashboard, app.CurrentView())

	send(app, key("enter"))
	assert.Equal(t, "p?", store.Get().Profile.Name)
}

func TestApp_SidebarSelection(t *testing.T) {
	app, _, _ := signedIn(t, adminSession)

	cmd := send(app, key("j"))
	require.NotNil(t, cmd)
	send(app, cmd())

	assert.Equal(t, domain.SectionSkills, app.Editor().Section())
	assert.Equal(t, domain.SectionSkills, app.Sidebar().Active())
}

func TestApp_ExternalReplace(t *testing.T) {
	app, store, _ := signedIn(t, adminSession)

	doc := domain.DefaultResume()
	doc.Profile.Name = "From Disk"
	store.Replace(doc)

	msg := app.waitForChange()()
	assert.Equal(t, messages.DocumentChanged{Revision: 1}, msg)

	cmd := send(app, msg)
	assert.NotNil(t, cmd, "keeps listening for changes")
	assert.Equal(t, "From Disk", app.Preview().Model().Header.Name)
	assert.Equal(t, uint64(1), app.Revision())
}

func TestApp_NotifyKeepsLatestRevision(t *testing.T) {
	app, store, _ := signedIn(t, adminSession)

	store.Replace(domain.Resume{})
	store.Replace(domain.Resume{})
	store.Replace(domain.Resume{})

	assert.Equal(t, messages.DocumentChanged{Revision: 3}, app.waitForChange()())
}

func TestApp_LogoutDiscardsEdits(t *testing.T) {
	app, store, _ := signedIn(t, adminSession)
	send(app, messages.PreviewToggled{})
	send(app, key("tab"))
	send(app, key("enter"))
	send(app, key("ctrl+u"))
	typeText(app, "Temp")
	send(app, key("enter"))
	require.Equal(t, "Temp", store.Get().Profile.Name)

	send(app, messages.LoggedOut{})

	assert.Equal(t, messages.ViewLogin, app.CurrentView())
	assert.Nil(t, app.Session())
	assert.Equal(t, domain.DefaultResume(), store.Get())
	assert.Equal(t, domain.DefaultResume().Profile.Name, app.Preview().Model().Header.Name)
}

func TestApp_Help(t *testing.T) {
	app, _, _ := signedIn(t, adminSession)

	send(app, key("?"))
	require.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Equal(t, status.StateHelp, app.StatusState())
	assert.Contains(t, app.View(), "Keyboard Shortcuts")

	cmd := send(app, key("esc"))
	require.NotNil(t, cmd)
	send(app, cmd())

	assert.Equal(t, messages.ViewDashboard, app.CurrentView())
	assert.Equal(t, status.StateReady, app.StatusState())
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"ctrl+c on dashboard", key("ctrl+c")},
		{"quit message", messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := signedIn(t, adminSession)

			cmd := send(app, tt.msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_QuitFromLogin(t *testing.T) {
	ports, _, _ := testPorts(t)
	app := newTestApp(t, ports)

	cmd := send(app, key("ctrl+c"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_PreviewShownOnStart(t *testing.T) {
	ports, _, _ := testPorts(t)
	ports.Settings = services.NewSettingsService(memory.NewConfigStoreWith(map[string]any{
		"preview.show_on_start": true,
		"preview.width":         50,
	}))
	app := newTestApp(t, ports)

	send(app, messages.LoginCompleted{Session: adminSession})

	assert.True(t, app.PreviewVisible())
	assert.Contains(t, app.View(), "Live Preview")
}

func TestApp_DashboardView(t *testing.T) {
	app, _, _ := signedIn(t, adminSession)

	view := app.View()

	assert.Contains(t, view, "Sections")
	assert.Contains(t, view, "Skills (8)")
	assert.Contains(t, view, "Chaitanya (Admin)")
	assert.NotContains(t, view, "Live Preview")
}

func TestApp_WindowResize(t *testing.T) {
	ports, _, _ := testPorts(t)
	app := newTestApp(t, ports)

	send(app, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.statusBar.Width())
}
