package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// holdTicks is how long a movement or fire key stays down after its last
// press. Terminals report key repeats, never releases, so a held key shows
// up as a stream of presses roughly every 30-50ms.
const holdTicks = 9

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "x":
		return core.ActionShoot, false
	case "e", "z", "shift+up", "shift+down":
		return core.ActionRescue, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// continuous reports whether an action models a held key rather than a
// single press.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionShoot, core.ActionRescue:
		return true
	}
	return false
}

// HeldKeys turns key presses into per-tick input frames. Continuous actions
// stay active for holdTicks after their last press; everything else fires
// on the next frame only.
type HeldKeys struct {
	until   map[core.Action]int
	pending core.InputFrame
	tick    int
}

// NewHeldKeys creates an empty key state.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		until:   make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records an action.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !continuous(a) {
		h.pending.Set(a)
		return
	}
	h.until[a] = h.tick + holdTicks
	// Opposite directions cancel each other on press.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	case core.ActionUp:
		delete(h.until, core.ActionDown)
	case core.ActionDown:
		delete(h.until, core.ActionUp)
	}
}

// Next returns the input for the coming tick and advances the clock.
func (h *HeldKeys) Next() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()
	for a, until := range h.until {
		if h.tick < until {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	h.tick++
	return frame
}

// Release drops every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
	h.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
