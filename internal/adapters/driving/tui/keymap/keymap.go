// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// SkillLevelStep is how far the level keys move a skill.
const SkillLevelStep = 5

// KeyMap defines all keybindings for the dashboard.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// SwitchFocus moves focus between the sidebar and the editor.
	SwitchFocus key.Binding

	// Add and Delete create and remove records in the current section.
	Add    key.Binding
	Delete key.Binding

	// AddHighlight and RemoveHighlight edit experience bullet points.
	AddHighlight    key.Binding
	RemoveHighlight key.Binding

	// LevelUp and LevelDown adjust the skill under the cursor.
	LevelUp   key.Binding
	LevelDown key.Binding

	TogglePreview key.Binding
	Save          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		AddHighlight: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "add highlight"),
		),
		RemoveHighlight: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove highlight"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "level up"),
		),
		LevelDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "level down"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.TogglePreview, k.Save, k.Help, k.Quit}
}

// EditorHelp returns the bindings shown while the editor has focus.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Select, k.Add, k.Delete, k.SwitchFocus, k.Help}
}

// ViewOnlyHelp returns the bindings available to viewers.
func (k *KeyMap) ViewOnlyHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchFocus, k.TogglePreview, k.Quit}
}

// FullHelp returns every binding grouped for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchFocus, k.Back},
		{k.Select, k.Add, k.Delete},
		{k.AddHighlight, k.RemoveHighlight, k.LevelUp, k.LevelDown},
		{k.TogglePreview, k.Save, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
