package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"w", runeKey('w'), core.ActionRotate},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"?", runeKey('?'), core.ActionHelp},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestKeyMapFromCustomConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keys["rotate"] = []string{"x"}
	km := NewKeyMap(cfg)

	assert.Equal(t, core.ActionRotate, km.MapKey(runeKey('x')))
	assert.Equal(t, core.ActionNone, km.MapKey(runeKey('w')))
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig())

	assert.Equal(t, "←/a", km.Left.Help().Key)
	assert.Equal(t, "↓/s/space", km.Drop.Help().Key)
	assert.Equal(t, "rotate", km.Rotate.Help().Desc)
	assert.Len(t, km.ShortHelp(), 6)
	assert.Len(t, km.FullHelp(), 2)
}
