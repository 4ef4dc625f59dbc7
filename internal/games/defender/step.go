package defender

import (
	"github.com/vovakirdan/tui-defender/internal/world"
)

// Step advances the world by dt seconds. A paused world does not change.
//
// Each step runs, in order: projectile motion and expiry, hit detection,
// hit reactions, player movement and shooting, camera follow, enemy AI,
// person movement, wrap re-projection, the wave scheduler and the
// game-over timer.
func (w *World) Step(dt float64, ctl Controls) Frame {
	w.frame = Frame{}
	if w.mode != ModeRunning {
		return w.frame
	}
	w.tick++
	w.elapsed += dt
	w.scroll = world.NewScroll(w.size, w.camera.X)

	w.moveProjectiles(dt)
	w.detectHits()
	w.resolveHits(ctl)

	w.movePlayer(dt, ctl)
	w.shoot(ctl)
	w.followCamera(dt)
	w.updateEnemies(dt)
	w.updatePersons(dt)

	w.scroll = world.NewScroll(w.size, w.camera.X)
	w.reproject()

	w.scheduleWave()
	w.checkGameOver()
	return w.frame
}
