package login

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/services"
)

func newTestView() *View {
	gate := services.NewAccessGate(memory.NewDemoCredentialStore(), domain.DefaultAppSettings().Access)
	v := NewView(styles.DefaultStyles(), gate)
	v.Init()
	return v
}

func typeText(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func signIn(t *testing.T, v *View, username, password string) messages.LoginCompleted {
	t.Helper()
	v = typeText(v, username)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v = typeText(v, password)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, v.Pending())

	msg, ok := cmd().(messages.LoginCompleted)
	require.True(t, ok)
	return msg
}

func TestLogin_Success(t *testing.T) {
	v := newTestView()

	msg := signIn(t, v, "admin", memory.DemoAdminPassword)

	require.NoError(t, msg.Err)
	require.NotNil(t, msg.Session)
	assert.Equal(t, domain.RoleAdmin, msg.Session.User.Role)

	v, _ = v.Update(msg)
	assert.False(t, v.Pending())
	assert.NoError(t, v.Err())
}

func TestLogin_Failure(t *testing.T) {
	v := newTestView()

	msg := signIn(t, v, "admin", "wrong")
	assert.ErrorIs(t, msg.Err, domain.ErrInvalidCredentials)

	v, _ = v.Update(msg)
	assert.False(t, v.Pending())
	assert.ErrorIs(t, v.Err(), domain.ErrInvalidCredentials)
	assert.Contains(t, v.View(), "Invalid username or password")
	assert.Equal(t, "admin", v.Username(), "username is kept")
	assert.Empty(t, v.password.Value(), "password is cleared")
}

func TestLogin_EnterOnUsernameMovesToPassword(t *testing.T) {
	v := newTestView()
	v = typeText(v, "viewer")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, v.Pending())
	assert.True(t, v.password.Focused())
	assert.False(t, v.username.Focused())
	_ = cmd
}

func TestLogin_IgnoresKeysWhilePending(t *testing.T) {
	v := newTestView()
	v = typeText(v, "admin")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.Pending())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestLogin_RateLimitedMessage(t *testing.T) {
	v := newTestView()

	v, _ = v.Update(messages.LoginCompleted{Err: domain.ErrRateLimited})

	assert.Contains(t, v.View(), "Too many failed attempts")
}

func TestLogin_HintAndReset(t *testing.T) {
	v := newTestView()
	v.SetHint("Demo: admin / admin123")
	v = typeText(v, "someone")
	v, _ = v.Update(messages.LoginCompleted{Err: domain.ErrInvalidCredentials})

	assert.Contains(t, v.View(), "Demo: admin / admin123")

	v.Reset()
	assert.Empty(t, v.Username())
	assert.NoError(t, v.Err())
	assert.True(t, v.username.Focused())
}

func TestLogin_WindowSize(t *testing.T) {
	v := newTestView()

	v, _ = v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, v.width)
	assert.Equal(t, 40, v.height)
	assert.Contains(t, v.View(), "Resume Dashboard")
}
