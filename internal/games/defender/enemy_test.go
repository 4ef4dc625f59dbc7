package defender

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/world"
)

func TestEnemyCapturesNearbyPerson(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	x := w.Camera().X + 2000
	offset := core.V(0, w.cfg.Person.EnemyOffsetY)
	person := w.spawnPerson(x)
	ground, _ := w.position(person)
	enemy := w.spawnEnemy(ground.Sub(offset), Lander)

	f := w.Step(dt, Controls{})

	en, _ := w.enemies.Get(enemy)
	p, _ := w.persons.Get(person)
	assert.True(t, en.Carrying)
	assert.Equal(t, Captured, p.State)
	assert.Equal(t, enemy, p.Captor)
	assert.Equal(t, w.playfieldTop(), en.Desired.Y)
	assert.True(t, hasSound(f, core.SoundCapture))
	assert.True(t, hasEvent(f, EventCapture))

	at, _ := w.position(enemy)
	pat, _ := w.position(person)
	assert.InDelta(t, at.Y+offset.Y, pat.Y, 1e-9)
}

func TestEnemyHeadsForNearestPerson(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	x := w.Camera().X + 2000
	far := w.spawnPerson(x + 300)
	near := w.spawnPerson(x + 100)
	enemy := w.spawnEnemy(core.V(x, 300), Lander)

	w.Step(dt, Controls{})

	en, _ := w.enemies.Get(enemy)
	target, _ := w.position(near)
	assert.InDelta(t, target.X, en.Desired.X, 1e-6, "within reach, the waypoint is the pickup spot")
	assert.InDelta(t, target.Y-w.cfg.Person.EnemyOffsetY, en.Desired.Y, 1e-6)
	assert.True(t, w.persons.Has(far))
	assert.False(t, en.Carrying)
}

func TestEnemyMutatesOnDelivery(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	top := w.playfieldTop()
	x := w.Camera().X + 2000
	enemy := w.spawnEnemy(core.V(x, top-50.5), Lander)
	person := w.spawnPerson(x)
	w.capture(person, enemy, core.V(0, w.cfg.Person.EnemyOffsetY))
	w.positions.Set(person, core.V(x, top-50.5+w.cfg.Person.EnemyOffsetY))
	en, _ := w.enemies.Get(enemy)
	en.Carrying = true
	en.NextRetarget = 100
	en.Desired = core.V(x, top)

	f := w.Step(dt, Controls{})

	require.True(t, w.enemies.Has(enemy), "the entity keeps its id")
	assert.Equal(t, Mutant, en.Variant)
	assert.False(t, en.Carrying)
	assert.Equal(t, 0.0, en.NextShot)
	assert.True(t, hasEvent(f, EventMutation))
	assert.Equal(t, 1, w.Stats().Mutations)
	assert.Equal(t, 1, w.ActiveEnemies(), "mutation does not change the wave count")

	bound, ok := w.enemyByLaser.Bound(enemy)
	require.True(t, ok)
	assert.Equal(t, core.V(w.cfg.Enemy.Mutant.Width, w.cfg.Enemy.Mutant.Height), bound)

	p, _ := w.persons.Get(person)
	assert.Equal(t, Falling, p.State)
}

func TestPersonFallsWhenCaptorDies(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	x := w.Camera().X + 2000
	enemy := w.spawnEnemy(core.V(x, 345), Lander)
	person := w.spawnPerson(x)
	w.capture(person, enemy, core.V(0, w.cfg.Person.EnemyOffsetY))
	w.Step(dt, Controls{})

	w.despawn(enemy)
	w.Step(dt, Controls{})
	p, _ := w.persons.Get(person)
	require.Equal(t, Falling, p.State)

	for i := 0; i < 600 && p.State != Grounded; i++ {
		w.Step(dt, Controls{})
	}
	require.Equal(t, Grounded, p.State)
	pos, _ := w.position(person)
	assert.Equal(t, w.cfg.GroundY(), pos.Y)
}

func TestEnemyHoldsFireUntilSettledInView(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	player, _ := w.PlayerPos()
	w.spawnEnemy(player.Add(core.V(0, -200)), Lander)

	fired := -1.0
	for i := 0; i < 60; i++ {
		f := w.Step(dt, Controls{})
		if hasSound(f, core.SoundOrb) {
			fired = w.Elapsed()
			break
		}
	}
	require.Positive(t, fired, "enemy below the player fires straight up")
	assert.Greater(t, fired, w.cfg.Enemy.ReacquireDelay)
	assert.Less(t, fired, w.cfg.Enemy.ReacquireDelay+2*dt)
	assert.Equal(t, 1, countKind(w, KindOrb))
}

func TestEnemyShotAimAndAccuracy(t *testing.T) {
	tests := map[string]struct {
		offset core.Vec2 // player minus enemy
		hspeed float64
		draw   float64
		fires  bool
		vel    core.Vec2
	}{
		"straight up at a still player": {
			offset: core.V(0, 200), draw: 0.5, fires: true, vel: core.V(-0.239, 300),
		},
		"leads a player flying right": {
			offset: core.V(0, 200), hspeed: 600, draw: 0.5, fires: true, vel: core.V(134.013, 268.403),
		},
		"leads a player flying left": {
			offset: core.V(0, 200), hspeed: -600, draw: 0.5, fires: true, vel: core.V(-134.441, 268.19),
		},
		"diagonal aim passes a low draw": {
			offset: core.V(200, 100), draw: 0.5, fires: true, vel: core.V(268.297, 134.227),
		},
		"diagonal aim loses a high draw": {
			offset: core.V(200, 100), draw: 0.95,
		},
		"horizontal aim never fires": {
			offset: core.V(300, 0), draw: 0,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t, constRand(tt.draw))
			holdWave(w)
			w.elapsed = 1
			w.ship.HSpeed = tt.hspeed
			player, _ := w.PlayerPos()
			pos := player.Sub(tt.offset)
			e := w.spawnEnemy(pos, Lander)
			en, _ := w.enemies.Get(e)

			w.enemyShoot(en, pos)

			assert.InDelta(t, 1+w.cfg.Enemy.Lander.ShotDelay, en.NextShot, 1e-9, "cooldown restarts whether or not the orb left")
			if !tt.fires {
				assert.Equal(t, 0, countKind(w, KindOrb))
				return
			}
			require.Equal(t, 1, countKind(w, KindOrb))
			w.projectiles.Each(func(_ ecs.Entity, p *Projectile) {
				assert.InDelta(t, tt.vel.X, p.Velocity.X, 0.01)
				assert.InDelta(t, tt.vel.Y, p.Velocity.Y, 0.01)
				assert.Equal(t, core.HueColor(w.cfg.Enemy.Lander.OrbHue), p.Color)
			})
		})
	}
}

func TestOffscreenEnemyDoesNotFire(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	player, _ := w.PlayerPos()
	enemy := w.spawnEnemy(player.Add(core.V(2000, -200)), Lander)

	for i := 0; i < 120; i++ {
		w.Step(dt, Controls{})
	}
	en, _ := w.enemies.Get(enemy)
	assert.Equal(t, 0, countKind(w, KindOrb))
	assert.InDelta(t, w.Elapsed(), en.LastOutside, 1e-9)
}

func TestWaypointStaysInBand(t *testing.T) {
	w := newTestWorld(t, rand.New(rand.NewSource(11)))
	off := w.cfg.Window.BorderOffset
	top := w.playfieldTop()
	for _, y := range []float64{off, 120, 315, 500, top - off} {
		for i := 0; i < 200; i++ {
			p := w.waypoint(core.V(1000, y), w.cfg.Enemy.MaxChange)
			assert.GreaterOrEqual(t, p.Y, off)
			assert.LessOrEqual(t, p.Y, top-off)
			assert.InDelta(t, 1000, p.X, w.cfg.Enemy.MaxChange)
		}
	}
}

func TestWaypointZeroJitter(t *testing.T) {
	w := newTestWorld(t, rand.New(rand.NewSource(12)))
	p := w.waypoint(core.V(123, 456), 0)
	assert.Equal(t, core.V(123, 456), p)

	// Outside the band nothing can be accepted, so the point is clamped.
	p = w.waypoint(core.V(123, 10), 0)
	assert.Equal(t, core.V(123, w.cfg.Window.BorderOffset), p)
}

func TestSteerTakesShortWayAcrossSeam(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	size := w.size
	pos := core.V(size-10, 300)

	w.steer(&pos, core.V(10, 300), 5)

	assert.InDelta(t, size-5, world.Fract(pos.X/size)*size, 1e-6)
	assert.Equal(t, 300.0, pos.Y)

	// 20 units ahead across the seam and 20 up: a diagonal move.
	pos = core.V(size-10, 300)
	w.steer(&pos, core.V(10, 320), 10)
	assert.InDelta(t, size-10+10/math.Sqrt2, world.Fract(pos.X/size)*size, 1e-6)
	assert.InDelta(t, 300+10/math.Sqrt2, pos.Y, 1e-6)
}

func TestSteerCoincidentPointsDoNotMove(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	pos := core.V(700, 300)

	w.steer(&pos, pos, 5)

	assert.Equal(t, core.V(700, 300), pos)
}
