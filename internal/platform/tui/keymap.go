package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap defines the key bindings for the game, built from config.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Rotate  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.Config) KeyMap {
	bind := func(a core.Action, desc string) key.Binding {
		keys := normalizeKeys(cfg.Bindings(a))
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}
	return KeyMap{
		Left:    bind(core.ActionLeft, "move left"),
		Right:   bind(core.ActionRight, "move right"),
		Drop:    bind(core.ActionDrop, "drop"),
		Rotate:  bind(core.ActionRotate, "rotate"),
		Pause:   bind(core.ActionPause, "pause"),
		Restart: bind(core.ActionRestart, "restart"),
		Quit:    bind(core.ActionQuit, "quit"),
		Help:    bind(core.ActionHelp, "more keys"),
	}
}

// MapKey translates a key message to an action, or ActionNone if unbound.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// normalizeKeys maps config spellings to the names Bubble Tea reports.
func normalizeKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if strings.EqualFold(k, "space") {
			k = " "
		}
		out[i] = k
	}
	return out
}

var keyGlyphs = map[string]string{
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
	" ":     "space",
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if g, ok := keyGlyphs[k]; ok {
			k = g
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
