package defender

import (
	"fmt"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
)

// EventKind classifies a gameplay event.
type EventKind int

const (
	EventWave EventKind = iota
	EventKill
	EventPlayerDown
	EventCapture
	EventRescue
	EventPersonLost
	EventMutation
	EventGameOver
	EventRoundOver
)

var eventNames = map[EventKind]string{
	EventWave:       "wave",
	EventKill:       "kill",
	EventPlayerDown: "player_down",
	EventCapture:    "capture",
	EventRescue:     "rescue",
	EventPersonLost: "person_lost",
	EventMutation:   "mutation",
	EventGameOver:   "game_over",
	EventRoundOver:  "round_over",
}

// String returns the event name.
func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is something that happened during a step.
type Event struct {
	Kind   EventKind
	Entity ecs.Entity
	Pos    core.Vec2
	Value  int // wave number, score award, ...
}

// Frame is the output of one step.
type Frame struct {
	Events []Event
	Sounds []core.SoundEvent
}

func (w *World) emit(kind EventKind, e ecs.Entity, pos core.Vec2, value int) {
	w.frame.Events = append(w.frame.Events, Event{Kind: kind, Entity: e, Pos: pos, Value: value})
}

func (w *World) play(s core.Sound, volume float64) {
	w.frame.Sounds = append(w.frame.Sounds, core.SoundEvent{Sound: s, Volume: volume})
}
