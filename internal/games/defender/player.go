package defender

import (
	"math"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/hit"
)

// Controls is the held input of one step.
type Controls struct {
	Up, Down    bool
	Left, Right bool
	Shoot       bool
	Rescue      bool
}

// ControlsFrom maps platform actions to controls.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Up:     in.Has(core.ActionUp),
		Down:   in.Has(core.ActionDown),
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Shoot:  in.Has(core.ActionShoot),
		Rescue: in.Has(core.ActionRescue),
	}
}

// thrust returns the requested facing. Left wins over right.
func (c Controls) thrust() (float64, bool) {
	switch {
	case c.Left:
		return -1, true
	case c.Right:
		return 1, true
	default:
		return 0, false
	}
}

func (c Controls) climb() float64 {
	v := 0.0
	if c.Up {
		v++
	}
	if c.Down {
		v--
	}
	return v
}

// Ship is the player craft state.
type Ship struct {
	Facing   float64 // +1 right, -1 left
	HSpeed   float64
	NextShot float64
}

func (w *World) spawnPlayer(pos core.Vec2) ecs.Entity {
	e := w.reg.Spawn()
	w.positions.Set(e, pos)
	w.player = e
	w.ship = Ship{Facing: 1}
	w.playerByOrb.Add(e, core.V(w.cfg.Player.Width, w.cfg.Player.Height))
	return e
}

func (w *World) playerStrikers() []hit.Striker[playerHit] {
	pos, ok := w.PlayerPos()
	if !ok {
		return nil
	}
	box := core.NewBox(pos, core.V(w.cfg.Player.Width, w.cfg.Player.Height))
	return []hit.Striker[playerHit]{{ID: w.player, Box: box}}
}

// movePlayer applies thrust, drag and climb, then confines the craft.
func (w *World) movePlayer(dt float64, ctl Controls) {
	pos, ok := w.positions.Get(w.player)
	if !ok {
		return
	}
	pc := w.cfg.Player
	s := &w.ship
	if side, on := ctl.thrust(); on {
		s.Facing = side
		s.HSpeed = core.Step(s.HSpeed, side*pc.HorizontalSpeed, pc.Acceleration*dt)
	} else {
		drag := pc.Deceleration * (math.Abs(s.HSpeed) / pc.HorizontalSpeed)
		s.HSpeed = core.Step(s.HSpeed, 0, drag*dt)
	}
	*pos = pos.Add(core.V(s.HSpeed, ctl.climb()*pc.VerticalSpeed).Scale(dt))
	w.confine(pos)
}

// shoot fires a laser from the muzzle when the cooldown allows.
func (w *World) shoot(ctl Controls) {
	if !ctl.Shoot || w.player == ecs.None || w.ship.NextShot > w.elapsed {
		return
	}
	pos, ok := w.position(w.player)
	if !ok {
		return
	}
	pc := w.cfg.Projectile
	angle := 0.0
	if w.ship.Facing < 0 {
		angle = 0.5
	}
	offset := w.cfg.Player.FrontOffset + pc.LaserWidth*0.5
	w.spawnProjectile(pos.Add(core.V(offset*w.ship.Facing, 0)), Projectile{
		Kind:      KindLaser,
		Velocity:  core.Clock(angle).Scale(pc.LaserSpeed),
		Bound:     core.V(pc.LaserWidth, pc.LaserHeight),
		Color:     core.HueColor(math.Mod(w.elapsed*120, 360)),
		Damaging:  true,
		ExpiresAt: noExpiry,
	})
	w.play(core.SoundLaser, w.cfg.Audio.Volume)
	w.ship.NextShot = w.elapsed + w.cfg.Player.ShootDelay
}

// followCamera eases the camera toward a point ahead of the craft.
func (w *World) followCamera(dt float64) {
	pos, ok := w.PlayerPos()
	if !ok {
		return
	}
	target := pos.X + w.ship.Facing*w.cfg.Camera.Lead*w.cfg.Window.Width
	w.camera.X = core.Step(w.camera.X, target, w.cfg.Camera.Speed*dt)
}
