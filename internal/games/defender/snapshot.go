package defender

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-defender/internal/ecs"
)

// Snapshot captures the observable world state for determinism checks,
// headless runs and rendering outside the simulation.
type Snapshot struct {
	Tick        uint64       `msgpack:"tick"`
	Elapsed     float64      `msgpack:"elapsed"`
	CameraX     float64      `msgpack:"camera_x"`
	Score       int          `msgpack:"score"`
	Wave        int          `msgpack:"wave"`
	Active      int          `msgpack:"active"`
	Mode        string       `msgpack:"mode"`
	Over        bool         `msgpack:"over"`
	Player      *ShipState   `msgpack:"player,omitempty"`
	Enemies     []EnemyState `msgpack:"enemies"`
	Persons     []PersonView `msgpack:"persons"`
	Projectiles []ShotState  `msgpack:"projectiles"`
	Stats       Stats        `msgpack:"stats"`
}

// ShipState is the player part of a snapshot.
type ShipState struct {
	ID     uint64  `msgpack:"id"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Facing float64 `msgpack:"facing"`
	HSpeed float64 `msgpack:"hspeed"`
}

// EnemyState is one enemy in a snapshot.
type EnemyState struct {
	ID       uint64  `msgpack:"id"`
	Variant  string  `msgpack:"variant"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	DesiredX float64 `msgpack:"desired_x"`
	DesiredY float64 `msgpack:"desired_y"`
	Carrying bool    `msgpack:"carrying"`
}

// PersonView is one person in a snapshot.
type PersonView struct {
	ID     uint64  `msgpack:"id"`
	State  string  `msgpack:"state"`
	Captor uint64  `msgpack:"captor,omitempty"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Frame  int     `msgpack:"frame"`
}

// ShotState is one projectile in a snapshot.
type ShotState struct {
	ID   uint64  `msgpack:"id"`
	Kind string  `msgpack:"kind"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	VX   float64 `msgpack:"vx"`
	VY   float64 `msgpack:"vy"`
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    w.tick,
		Elapsed: w.elapsed,
		CameraX: w.camera.X,
		Score:   w.score,
		Wave:    w.wave,
		Active:  w.count,
		Mode:    w.mode.String(),
		Over:    w.over,
		Stats:   w.stats,
	}
	if pos, ok := w.PlayerPos(); ok {
		s.Player = &ShipState{
			ID:     uint64(w.player),
			X:      pos.X,
			Y:      pos.Y,
			Facing: w.ship.Facing,
			HSpeed: w.ship.HSpeed,
		}
	}
	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		pos, _ := w.position(e)
		s.Enemies = append(s.Enemies, EnemyState{
			ID:       uint64(e),
			Variant:  en.Variant.String(),
			X:        pos.X,
			Y:        pos.Y,
			DesiredX: en.Desired.X,
			DesiredY: en.Desired.Y,
			Carrying: en.Carrying,
		})
	})
	w.persons.Each(func(e ecs.Entity, p *Person) {
		pos, _ := w.position(e)
		s.Persons = append(s.Persons, PersonView{
			ID:     uint64(e),
			State:  p.State.String(),
			Captor: uint64(p.Captor),
			X:      pos.X,
			Y:      pos.Y,
			Frame:  p.Frame,
		})
	})
	w.projectiles.Each(func(e ecs.Entity, p *Projectile) {
		pos, _ := w.position(e)
		s.Projectiles = append(s.Projectiles, ShotState{
			ID:   uint64(e),
			Kind: p.Kind.String(),
			X:    pos.X,
			Y:    pos.Y,
			VX:   p.Velocity.X,
			VY:   p.Velocity.Y,
		})
	})
	return s
}

// EncodeSnapshot serializes a snapshot with MessagePack.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("defender: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("defender: cannot decode snapshot: %w", err)
	}
	return s, nil
}
