package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defender/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionShoot, false},
		{runeKey('e'), core.ActionRescue, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('b'), core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('y'), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestHeldKeysHoldContinuousActions(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionRight)

	for i := 0; i < holdTicks; i++ {
		if !h.Next().Has(core.ActionRight) {
			t.Fatalf("tick %d: right released too early", i)
		}
	}
	if h.Next().Has(core.ActionRight) {
		t.Error("right still held after holdTicks")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionShoot)
	for i := 0; i < holdTicks-1; i++ {
		h.Next()
	}
	h.Press(core.ActionShoot)
	for i := 0; i < holdTicks; i++ {
		if !h.Next().Has(core.ActionShoot) {
			t.Fatalf("tick %d: repeat did not extend the hold", i)
		}
	}
}

func TestHeldKeysOneShotActions(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionPause)

	if !h.Next().Has(core.ActionPause) {
		t.Fatal("pause missing from the next frame")
	}
	if h.Next().Has(core.ActionPause) {
		t.Error("pause repeated on the following frame")
	}
}

func TestHeldKeysOppositeDirectionsCancel(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)
	h.Press(core.ActionUp)
	h.Press(core.ActionDown)

	f := h.Next()
	if f.Has(core.ActionLeft) || f.Has(core.ActionUp) {
		t.Error("earlier direction survived its opposite")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionDown) {
		t.Error("latest direction missing")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionUp)
	h.Press(core.ActionRestart)
	h.Release()

	if f := h.Next(); len(f.Actions) != 0 {
		t.Errorf("frame after Release() = %v, want empty", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		"up":     {tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		"j":      {runeKey('j'), MenuActionDown},
		"left":   {tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		"d":      {runeKey('d'), MenuActionRight},
		"enter":  {tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		"esc":    {tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		"tab":    {tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		"q":      {runeKey('q'), MenuActionQuit},
		"xother": {runeKey('x'), MenuActionNone},
	}
	for name, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: got %v, want %v", name, got, tt.want)
		}
	}
}
