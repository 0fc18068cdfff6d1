package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// KeyMap holds the bindings built from the configured key names.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Start   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
	Scores  key.Binding
}

// NewKeyMap creates bindings for the given key configuration.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}
	return KeyMap{
		Left:    bind(cfg.Left, "left"),
		Right:   bind(cfg.Right, "right"),
		Up:      bind(cfg.Up, "up"),
		Down:    bind(cfg.Down, "down"),
		Fire:    bind(cfg.Fire, "fire"),
		Start:   bind(cfg.Start, "start"),
		Restart: bind(cfg.Restart, "restart"),
		Back:    bind(cfg.Back, "menu"),
		Quit:    bind(cfg.Quit, "quit"),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
	}
}

// helpKeys joins key names for the help bar.
func helpKeys(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, config.KeyLabel([]string{k}))
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Start, k.Restart},
		{k.Back, k.Scores, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given key configuration.
func NewKeyMapper(cfg config.KeyConfig) *KeyMapper {
	return &KeyMapper{keys: NewKeyMap(cfg)}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	// Global quit keys
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}

	switch {
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.keys.Up), msg.String() == "k": // vim-style k for up
		return MenuActionUp
	case key.Matches(msg, km.keys.Down), msg.String() == "j": // vim-style j for down
		return MenuActionDown
	case key.Matches(msg, km.keys.Start), key.Matches(msg, km.keys.Fire):
		return MenuActionSelect
	case key.Matches(msg, km.keys.Scores):
		return MenuActionScoreboard
	case key.Matches(msg, km.keys.Back):
		return MenuActionBack
	}

	return MenuActionNone
}
