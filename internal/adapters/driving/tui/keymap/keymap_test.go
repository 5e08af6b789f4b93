package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"switch focus", km.SwitchFocus, []string{"tab"}},
		{"add", km.Add, []string{"a"}},
		{"delete", km.Delete, []string{"d"}},
		{"add highlight", km.AddHighlight, []string{"h"}},
		{"remove highlight", km.RemoveHighlight, []string{"x"}},
		{"level up", km.LevelUp, []string{"+", "="}},
		{"level down", km.LevelDown, []string{"-"}},
		{"toggle preview", km.TogglePreview, []string{"p"}},
		{"save", km.Save, []string{"ctrl+s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.EditorHelp(), 5)
	assert.Len(t, km.ViewOnlyHelp(), 5)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		key      string
		binding  key.Binding
		expected bool
	}{
		{"vim up", "k", km.Up, true},
		{"arrow down", "down", km.Down, true},
		{"equals raises level", "=", km.LevelUp, true},
		{"wrong key", "q", km.Quit, false},
		{"empty key", "", km.Save, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.key, tt.binding))
		})
	}
}
