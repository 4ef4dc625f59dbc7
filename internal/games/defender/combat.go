package defender

import (
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
)

// detectHits fills every hit table. Striker boxes are clipped to the
// viewport, so nothing off screen hits anything.
func (w *World) detectHits() {
	view := w.viewport()
	lasers := strikers[laserHit](w, KindLaser)
	orbs := strikers[orbHit](w, KindOrb)
	ship := w.playerStrikers()

	w.enemyByLaser.Detect(w.position, lasers, &view)
	w.enemyByPlayer.Detect(w.position, ship, &view)
	w.playerByOrb.Detect(w.position, orbs, &view)
	w.personByLaser.Detect(w.position, lasers, &view)
	w.personByPlayer.Detect(w.position, ship, &view)
}

// resolveHits applies the reactions in a fixed order and clears the
// tables. An entity removed by an earlier reaction is ignored by later
// ones.
func (w *World) resolveHits(ctl Controls) {
	w.laserKills()
	w.collisions()
	w.orbHits()
	w.personsShot()
	w.rescues(ctl)

	w.enemyByLaser.Clear()
	w.enemyByPlayer.Clear()
	w.playerByOrb.Clear()
	w.personByLaser.Clear()
	w.personByPlayer.Clear()
}

// killEnemy removes an enemy of the current wave with an explosion.
func (w *World) killEnemy(e ecs.Entity) core.Vec2 {
	pos, _ := w.position(e)
	w.releaseCapturedBy(e)
	w.despawn(e)
	w.count--
	w.explode(pos)
	return pos
}

// laserKills destroys enemies hit by a laser. The laser keeps flying.
func (w *World) laserKills() {
	for _, h := range w.enemyByLaser.Hits() {
		if !w.enemies.Has(h.Target) {
			continue
		}
		pos := w.killEnemy(h.Target)
		w.score += w.cfg.Scoring.Kill
		w.stats.Kills++
		w.emit(EventKill, h.Target, pos, w.cfg.Scoring.Kill)
	}
}

// collisions destroys the player and any enemy it touched.
func (w *World) collisions() {
	for _, h := range w.enemyByPlayer.Hits() {
		if !w.enemies.Has(h.Target) || h.Striker != w.player || w.player == ecs.None {
			continue
		}
		w.killEnemy(h.Target)
		w.killPlayer()
	}
}

// orbHits destroys the player when an orb reached it.
func (w *World) orbHits() {
	for _, h := range w.playerByOrb.Hits() {
		if h.Target != w.player || w.player == ecs.None {
			continue
		}
		w.killPlayer()
	}
}

func (w *World) killPlayer() {
	pos, _ := w.position(w.player)
	e := w.player
	w.despawn(e)
	w.explode(pos)
	w.emit(EventPlayerDown, e, pos, 0)
	w.gameOver()
}

// personsShot destroys persons hit by a laser unless the player carries
// them. An enemy carrying the victim loses its load.
func (w *World) personsShot() {
	for _, h := range w.personByLaser.Hits() {
		p, ok := w.persons.Get(h.Target)
		if !ok {
			continue
		}
		if p.State == Captured && p.Captor == w.player && w.player != ecs.None {
			continue
		}
		if p.State == Captured {
			if en, ok := w.enemies.Get(p.Captor); ok {
				en.Carrying = false
			}
		}
		pos, _ := w.position(h.Target)
		w.despawn(h.Target)
		w.explode(pos)
		w.stats.PersonsLost++
		w.emit(EventPersonLost, h.Target, pos, 0)
	}
}

// rescues lets the player pick up touched persons while rescue is held.
func (w *World) rescues(ctl Controls) {
	if !ctl.Rescue {
		return
	}
	for _, h := range w.personByPlayer.Hits() {
		if w.player == ecs.None || h.Striker != w.player {
			return
		}
		p, ok := w.persons.Get(h.Target)
		if !ok || p.State == Captured {
			continue
		}
		w.capture(h.Target, w.player, core.V(0, w.cfg.Person.PlayerOffsetY))
		w.score += w.cfg.Scoring.Rescue
		w.stats.Rescues++
		pos, _ := w.position(h.Target)
		w.emit(EventRescue, h.Target, pos, w.cfg.Scoring.Rescue)
		w.play(core.SoundRescue, w.cfg.Audio.VoiceVolume)
	}
}

// gameOver starts the end-of-round timer.
func (w *World) gameOver() {
	if w.gameOverPending || w.over {
		return
	}
	w.gameOverPending = true
	w.gameOverAt = w.elapsed
	w.emit(EventGameOver, ecs.None, core.Vec2{}, w.score)
	w.play(core.SoundGameOver, w.cfg.Audio.VoiceVolume)
}

// checkGameOver ends the round once the delay after game over has passed.
func (w *World) checkGameOver() {
	if !w.gameOverPending || w.gameOverAt+w.cfg.Camera.GameOverDelay >= w.elapsed {
		return
	}
	w.gameOverPending = false
	w.over = true
	w.mode = ModePaused
	w.emit(EventRoundOver, ecs.None, core.Vec2{}, w.score)
}
