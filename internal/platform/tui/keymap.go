package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings:
// arrows, WASD and vim-style hjkl steer.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"up": core.ActionUp,
			"w":  core.ActionUp,
			"k":  core.ActionUp,

			"down": core.ActionDown,
			"s":    core.ActionDown,
			"j":    core.ActionDown,

			"left": core.ActionLeft,
			"a":    core.ActionLeft,
			"h":    core.ActionLeft,

			"right": core.ActionRight,
			"d":     core.ActionRight,
			"l":     core.ActionRight,

			"p":   core.ActionPause,
			"esc": core.ActionPause,

			"r":      core.ActionRestart,
			"q":      core.ActionQuit,
			"ctrl+c": core.ActionQuit,
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}
