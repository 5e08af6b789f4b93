package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/services"
)

func TestPreviewCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "preview")

	require.NoError(t, err)
	assert.Contains(t, out, "V Chaitanya Chowdari")
	assert.Contains(t, out, "WORK EXPERIENCE")
}

func TestPreviewCmd_Width(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "preview", "--width", "40")

	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40, line)
	}
}

func TestPreviewCmd_ReflectsStore(t *testing.T) {
	s, cleanup := setupTestServices()
	defer cleanup()
	s.Store.Replace(domain.Resume{})

	out, err := execute("", "preview")

	require.NoError(t, err)
	assert.Contains(t, out, "Your Name")
}

func TestExportCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "export")
	require.NoError(t, err)

	var doc domain.Resume
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	expected := domain.DefaultResume()
	assert.Equal(t, expected.Profile, doc.Profile)
	assert.Len(t, doc.Skills, len(expected.Skills))
}

func TestExportCmd_TOML(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "export", "--format", "TOML")
	require.NoError(t, err)

	assert.Contains(t, out, "[profile]")
	var doc domain.Resume
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "V Chaitanya Chowdari", doc.Profile.Name)
}

func TestExportCmd_UnsupportedFormat(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("", "export", "-f", "yaml")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportCmd_OutputFile(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "resume.json")

	out, err := execute("", "export", "-o", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Exported json to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"credentialId"`)
}

func TestUserHashCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("s3cret\n", "user", "hash")

	require.NoError(t, err)
	hash := strings.TrimPrefix(lastLine(out), "Password: ")
	assert.True(t, services.CheckPassword(hash, "s3cret"))
}

func TestUserHashCmd_EmptyPassword(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("\n", "user", "hash")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserAddCmd(t *testing.T) {
	s, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("pw123\npw123\n", "user", "add", "alice", "--role", "admin", "--name", "Alice Smith")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved user alice (admin)")

	session, err := s.Access.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", session.User.Name)
	assert.True(t, session.CanEdit())
}

func TestUserAddCmd_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		msg   string
	}{
		{"mismatch", "one\ntwo\n", []string{"user", "add", "bob"}, "passwords do not match"},
		{"bad role", "pw\npw\n", []string{"user", "add", "bob", "--role", "owner"}, "invalid role"},
		{"missing username", "", []string{"user", "add"}, "accepts 1 arg(s)"},
		{"no input", "", []string{"user", "add", "bob"}, "read password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup := setupTestServices()
			defer cleanup()

			_, err := execute(tt.stdin, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUserListCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "user", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "Chaitanya (Admin)")
	assert.Contains(t, out, "Guest Viewer")
}

func TestUserVerifyCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("admin123\n", "user", "verify", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: admin signs in as admin")

	_, err = execute("nope\n", "user", "verify", "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSettingsShowCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Preview]")
	assert.Contains(t, out, "Width: 60")
	assert.Contains(t, out, "Path: (built-in)")
	assert.Contains(t, out, "Config: :memory:")
}

func TestSettingsSetCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("", "settings", "set", "preview.width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Set preview.width = 80")

	out, err = execute("", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Width: 80")
}

func TestSettingsSetCmd_InvalidKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("", "settings", "set", "preview.colour", "blue")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "valid keys: ")
	assert.Contains(t, err.Error(), "preview.width")
}

func TestWatchEnabled(t *testing.T) {
	s, cleanup := setupTestServices()
	defer cleanup()

	assert.False(t, watchEnabled(s.Settings))
	assert.False(t, watchEnabled(nil))

	require.NoError(t, s.Settings.Set("seed.watch", "true"))
	assert.True(t, watchEnabled(s.Settings))

	tuiWatch = true
	assert.True(t, watchEnabled(nil))
}

// fakeWatcher delivers the changes it is given.
type fakeWatcher struct {
	changes chan driven.SeedChange
	err     error
}

func (w *fakeWatcher) Watch(context.Context) (<-chan driven.SeedChange, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.changes, nil
}

func TestForwardSeedChanges(t *testing.T) {
	store := services.NewDocumentStore(domain.DefaultResume())
	watcher := &fakeWatcher{changes: make(chan driven.SeedChange)}

	require.NoError(t, forwardSeedChanges(context.Background(), watcher, store))

	updated := domain.DefaultResume()
	updated.Profile.Name = "Reloaded"
	watcher.changes <- driven.SeedChange{Err: domain.ErrSchemaViolation}
	watcher.changes <- driven.SeedChange{Resume: updated}
	close(watcher.changes)

	assert.Eventually(t, func() bool {
		return store.Get().Profile.Name == "Reloaded"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, uint64(1), store.Revision(), "invalid files are skipped")
}

func TestForwardSeedChanges_WatchError(t *testing.T) {
	store := services.NewDocumentStore(domain.DefaultResume())
	watcher := &fakeWatcher{err: os.ErrNotExist}

	err := forwardSeedChanges(context.Background(), watcher, store)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRedirectLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumedesk.log")

	restore, err := redirectLogs(path)
	require.NoError(t, err)
	restore()

	_, err = os.Stat(path)
	assert.NoError(t, err)

	restore, err = redirectLogs("")
	require.NoError(t, err)
	restore()

	_, err = redirectLogs(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}

func TestMCPServeCmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"mcp", "serve"})

	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("watch"))
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	defer resetFlags()
	SetServices(nil)

	_, err := execute("", "mcp", "serve")

	assert.ErrorIs(t, err, errNotConfigured)
}
