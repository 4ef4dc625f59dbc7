package defender

import (
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
)

// PersonState is the movement state of a person.
type PersonState uint8

const (
	Grounded PersonState = iota
	Falling
	Captured
)

// String returns the state name.
func (s PersonState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Falling:
		return "falling"
	case Captured:
		return "captured"
	default:
		return "unknown"
	}
}

// Person is a ground character that enemies abduct and the player rescues.
type Person struct {
	State     PersonState
	Captor    ecs.Entity // enemy or player; valid while Captured
	Offset    core.Vec2  // person position relative to the captor
	Frame     int
	NextFrame float64
}

func (w *World) spawnPerson(x float64) ecs.Entity {
	e := w.reg.Spawn()
	w.positions.Set(e, core.V(x, w.cfg.GroundY()))
	w.persons.Set(e, Person{State: Grounded, NextFrame: w.elapsed + w.cfg.Person.FramePeriod})
	bound := core.V(w.cfg.Person.Width, w.cfg.Person.Height)
	w.personByLaser.Add(e, bound)
	w.personByPlayer.Add(e, bound)
	return e
}

// capture attaches person to captor at the given offset.
func (w *World) capture(person, captor ecs.Entity, offset core.Vec2) {
	p, ok := w.persons.Get(person)
	if !ok {
		return
	}
	p.State = Captured
	p.Captor = captor
	p.Offset = offset
	if captor == w.player {
		return
	}
	pos, _ := w.position(person)
	w.stats.Captures++
	w.emit(EventCapture, person, pos, 0)
	w.play(core.SoundCapture, w.cfg.Audio.VoiceVolume)
}

// releaseCapturedBy drops every person held by captor.
func (w *World) releaseCapturedBy(captor ecs.Entity) {
	w.persons.Each(func(_ ecs.Entity, p *Person) {
		if p.State == Captured && p.Captor == captor {
			p.State = Falling
			p.Captor = ecs.None
		}
	})
}

// captorPos returns the position of a live captor.
func (w *World) captorPos(captor ecs.Entity) (core.Vec2, bool) {
	if captor == ecs.None {
		return core.Vec2{}, false
	}
	if captor != w.player && !w.enemies.Has(captor) {
		return core.Vec2{}, false
	}
	return w.position(captor)
}

// updatePersons moves captured persons with their captor, lets falling
// persons drop to the ground and animates grounded ones. A person whose
// captor is gone starts falling.
func (w *World) updatePersons(dt float64) {
	pc := w.cfg.Person
	ground := w.cfg.GroundY()
	w.persons.Each(func(e ecs.Entity, p *Person) {
		pos, ok := w.positions.Get(e)
		if !ok {
			return
		}
		switch p.State {
		case Captured:
			at, ok := w.captorPos(p.Captor)
			if !ok {
				p.State = Falling
				p.Captor = ecs.None
				return
			}
			*pos = at.Add(p.Offset)
		case Falling:
			pos.Y -= pc.FallSpeed * dt
			if pos.Y <= ground {
				pos.Y = ground
				p.State = Grounded
				p.NextFrame = w.elapsed + pc.FramePeriod
			}
		case Grounded:
			if pc.Frames > 0 && w.elapsed >= p.NextFrame {
				p.Frame = (p.Frame + 1) % pc.Frames
				p.NextFrame = w.elapsed + pc.FramePeriod
			}
		}
	})
}
