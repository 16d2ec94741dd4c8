package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tilt2048/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"k", runeKey("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey("s"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.MapKey(tt.msg))
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultGameKeyMap()
	frame := core.NewInputFrame()

	assert.False(t, keys.MapKeyToFrame(runeKey("a"), &frame))
	assert.True(t, frame.Has(core.ActionLeft))

	assert.False(t, keys.MapKeyToFrame(runeKey("x"), &frame))
	assert.Len(t, frame.Actions, 1)

	assert.True(t, keys.MapKeyToFrame(runeKey("q"), &frame))
	assert.False(t, frame.Has(core.ActionQuit), "quit is not a game input")
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	assert.Len(t, keys.ShortHelp(), 6)
	assert.Len(t, keys.FullHelp(), 2)

	menu := DefaultMenuKeyMap()
	assert.Len(t, menu.FullHelp()[0], len(menu.ShortHelp()))
}
