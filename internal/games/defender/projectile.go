package defender

import (
	"math"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/hit"
)

// ProjectileKind tells lasers, orbs and explosion sparks apart.
type ProjectileKind uint8

const (
	KindLaser ProjectileKind = iota
	KindOrb
	KindSpark
)

// String returns the kind name.
func (k ProjectileKind) String() string {
	switch k {
	case KindLaser:
		return "laser"
	case KindOrb:
		return "orb"
	case KindSpark:
		return "spark"
	default:
		return "unknown"
	}
}

// Projectile moves in a straight line until it leaves the viewport or
// expires.
type Projectile struct {
	Kind      ProjectileKind
	Velocity  core.Vec2
	Bound     core.Vec2
	Color     core.Color
	Damaging  bool
	ExpiresAt float64 // +Inf for projectiles that only die off screen
}

func (w *World) spawnProjectile(pos core.Vec2, p Projectile) ecs.Entity {
	e := w.reg.Spawn()
	w.positions.Set(e, pos)
	w.projectiles.Set(e, p)
	return e
}

// moveProjectiles advances projectiles, expires sparks and drops anything
// whose box no longer touches the viewport.
func (w *World) moveProjectiles(dt float64) {
	view := w.viewport()
	var dead []ecs.Entity
	w.projectiles.Each(func(e ecs.Entity, p *Projectile) {
		pos, ok := w.positions.Get(e)
		if !ok {
			dead = append(dead, e)
			return
		}
		*pos = pos.Add(p.Velocity.Scale(dt))
		if p.ExpiresAt < w.elapsed {
			dead = append(dead, e)
			return
		}
		if !core.NewBox(*pos, p.Bound).Intersects(view) {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		w.despawn(e)
	}
}

// explode spawns a ring of harmless sparks.
func (w *World) explode(pos core.Vec2) {
	pc := w.cfg.Projectile
	n := pc.SparkCount
	for i := 0; i < n; i++ {
		turns := 0.0
		if n > 1 {
			turns = float64(i) / float64(n-1)
		}
		dir := core.Clock(turns)
		w.spawnProjectile(pos.Add(dir.Scale(8)), Projectile{
			Kind:      KindSpark,
			Velocity:  dir.Scale(pc.SparkSpeed),
			Bound:     core.V(2, 2),
			Color:     core.HueColor(w.rng.Float64() * 360),
			ExpiresAt: w.elapsed + pc.SparkLifetime,
		})
	}
	w.play(core.SoundExplosion, w.cfg.Audio.ExplosionVolume)
}

func strikers[C any](w *World, kind ProjectileKind) []hit.Striker[C] {
	var out []hit.Striker[C]
	w.projectiles.Each(func(e ecs.Entity, p *Projectile) {
		if p.Kind != kind || !p.Damaging {
			return
		}
		pos, ok := w.position(e)
		if !ok {
			return
		}
		out = append(out, hit.Striker[C]{ID: e, Box: core.NewBox(pos, p.Bound)})
	})
	return out
}

var noExpiry = math.Inf(1)
