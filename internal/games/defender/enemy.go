package defender

import (
	"math"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/world"
)

// Variant identifies an enemy kind.
type Variant uint8

const (
	Lander Variant = iota
	Mutant
)

// String returns the variant name.
func (v Variant) String() string {
	if v == Mutant {
		return "mutant"
	}
	return "lander"
}

// variantTraits is the per-variant part of the enemy configuration.
type variantTraits struct {
	Bound     core.Vec2
	ShotDelay float64
	OrbColor  core.Color
	MapColor  core.Color
}

func traitsOf(cfg config.DefenderConfig, v Variant) variantTraits {
	vc := cfg.Enemy.Lander
	if v == Mutant {
		vc = cfg.Enemy.Mutant
	}
	return variantTraits{
		Bound:     core.V(vc.Width, vc.Height),
		ShotDelay: vc.ShotDelay,
		OrbColor:  core.HueColor(vc.OrbHue),
		MapColor:  core.HueColor(vc.MapHue),
	}
}

// Enemy is the AI state of one enemy.
type Enemy struct {
	Variant      Variant
	Desired      core.Vec2
	NextShot     float64
	NextRetarget float64
	LastOutside  float64
	Carrying     bool
}

func (w *World) spawnEnemy(pos core.Vec2, v Variant) ecs.Entity {
	e := w.reg.Spawn()
	w.positions.Set(e, pos)
	w.enemies.Set(e, Enemy{Variant: v, Desired: pos})
	bound := traitsOf(w.cfg, v).Bound
	w.enemyByLaser.Add(e, bound)
	w.enemyByPlayer.Add(e, bound)
	return e
}

// switchVariant turns an enemy into another variant in place. The entity
// keeps its id and position; its AI state starts over and a carried person
// is dropped.
func (w *World) switchVariant(e ecs.Entity, v Variant) {
	en, ok := w.enemies.Get(e)
	if !ok {
		return
	}
	pos, _ := w.position(e)
	*en = Enemy{Variant: v, Desired: pos}
	bound := traitsOf(w.cfg, v).Bound
	w.enemyByLaser.Resize(e, bound)
	w.enemyByPlayer.Resize(e, bound)
	w.releaseCapturedBy(e)
	w.stats.Mutations++
	w.emit(EventMutation, e, pos, int(v))
}

// updateEnemies runs retargeting, steering, confinement, shooting and
// mutation for every enemy.
func (w *World) updateEnemies(dt float64) {
	speed := w.difficulty.EnemySpeed(w.cfg.Enemy.Speed, w.wave, w.score)
	mutateAt := w.playfieldTop() - (w.cfg.Window.BorderOffset + 1)
	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		pos, ok := w.positions.Get(e)
		if !ok {
			return
		}
		if en.NextRetarget < w.elapsed {
			w.retarget(e, en, *pos)
		}
		w.steer(pos, en.Desired, speed*dt)
		w.confine(pos)
		w.enemyShoot(en, *pos)
		if en.Carrying && pos.Y > mutateAt {
			w.switchVariant(e, Mutant)
		}
	})
}

// retarget picks a new waypoint. A free enemy heads for the nearest
// grounded person and captures it once within reach; a carrying enemy
// climbs to the top of the playfield.
func (w *World) retarget(e ecs.Entity, en *Enemy, pos core.Vec2) {
	ec := w.cfg.Enemy
	if !en.Carrying {
		offset := core.V(0, w.cfg.Person.EnemyOffsetY)
		target, targetPos, best := ecs.None, core.Vec2{}, math.Inf(1)
		w.persons.Each(func(pe ecs.Entity, p *Person) {
			if p.State != Grounded {
				return
			}
			pp, ok := w.position(pe)
			if !ok {
				return
			}
			at := pp.Sub(offset)
			if d := at.Dist(pos); d < best {
				target, targetPos, best = pe, at, d
			}
		})
		switch {
		case target == ecs.None:
			en.Desired = w.waypoint(pos, ec.MaxChange)
		case best < ec.CaptureRadius:
			w.capture(target, e, offset)
			en.Carrying = true
			en.Desired = w.waypoint(pos, ec.MaxChange)
		default:
			jitter := ec.MaxChange
			if best < ec.MaxChange {
				jitter = 0
			}
			en.Desired = w.waypoint(targetPos, jitter)
		}
	} else {
		en.Desired = w.waypoint(pos, ec.MaxChange)
	}
	if en.Carrying {
		en.Desired.Y = w.playfieldTop()
	}
	en.NextRetarget = w.elapsed + ec.RetargetInterval
}

const maxResample = 64

// waypoint returns around+(dx,dy) with dx, dy uniform in [-f, f], dy drawn
// again until the point lies inside the playfield band. After maxResample
// rejections the point is clamped into the band instead.
func (w *World) waypoint(around core.Vec2, f float64) core.Vec2 {
	jitter := func() float64 { return (w.rng.Float64()*2 - 1) * f }
	off := w.cfg.Window.BorderOffset
	top := w.playfieldTop()
	dx := jitter()
	lo, hi := -around.Y+off, top-around.Y-off
	for i := 0; i < maxResample; i++ {
		if dy := jitter(); dy >= lo && dy <= hi {
			return core.V(around.X+dx, around.Y+dy)
		}
	}
	return core.V(around.X+dx, core.ClampF(around.Y, off, top-off))
}

// steer moves pos toward desired along the shortest way around the world.
// Coincident points leave pos unchanged.
func (w *World) steer(pos *core.Vec2, desired core.Vec2, dist float64) {
	dx := world.Fract(desired.X/w.size) - world.Fract(pos.X/w.size)
	switch {
	case dx > 0.5:
		dx--
	case dx < -0.5:
		dx++
	}
	dir, ok := core.V(dx*w.size, desired.Y-pos.Y).Normalize()
	if !ok {
		return
	}
	*pos = pos.Add(dir.Scale(dist))
	pos.X = w.scroll.Update(pos.X)
}

// enemyShoot aims an orb at where the player is heading and fires with a
// probability that depends on the firing angle. Enemies only fire after
// spending a short time inside the window.
func (w *World) enemyShoot(en *Enemy, pos core.Vec2) {
	target, ok := w.PlayerPos()
	if !ok {
		return
	}
	ec := w.cfg.Enemy
	delta := target.Sub(pos)
	lead := delta.Len() / (ec.AimHorizon * w.cfg.Player.HorizontalSpeed)
	dir := delta.NormalizeOr(core.V(1, 0))
	aim := target.Add(core.V(w.ship.HSpeed*lead, 0)).Sub(pos).Sub(dir.Scale(lead * w.cfg.Projectile.OrbSpeed))
	dir = aim.NormalizeOr(core.V(1, 0))

	angle := dir.Angle() / 3.14 * 0.5
	if angle < 0 {
		angle++
	}
	if !world.Visible(pos.X, w.camera.X, w.cfg.Window.Width) {
		en.LastOutside = w.elapsed
	}
	accuracy := math.Min(math.Min(angle, 1-angle), math.Abs(angle-0.5)) * 4

	if en.NextShot < w.elapsed && en.LastOutside+ec.ReacquireDelay < w.elapsed {
		vt := traitsOf(w.cfg, en.Variant)
		if w.rng.Float64() < math.Pow(accuracy, ec.AccuracyPower) {
			w.spawnProjectile(pos.Add(dir.Scale(ec.OrbSpawnDistance)), Projectile{
				Kind:      KindOrb,
				Velocity:  core.Clock(angle).Scale(w.cfg.Projectile.OrbSpeed),
				Bound:     core.V(w.cfg.Projectile.OrbSize, w.cfg.Projectile.OrbSize),
				Color:     vt.OrbColor,
				Damaging:  true,
				ExpiresAt: noExpiry,
			})
			w.play(core.SoundOrb, w.cfg.Audio.Volume)
		}
		en.NextShot = w.elapsed + w.difficulty.ShotDelay(vt.ShotDelay, w.wave, w.score)
	}
}
