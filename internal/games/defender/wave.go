package defender

import (
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/world"
)

// scheduleWave starts the next wave once the current one is cleared.
// Surviving persons earn a bonus, the population is refilled and a new
// group of landers spawns away from the camera.
func (w *World) scheduleWave() {
	if w.count > 0 || w.player == ecs.None {
		return
	}
	wc := w.cfg.Wave

	w.score += w.wave * w.cfg.Scoring.WaveMultiple
	if w.wave == 0 {
		w.wave = wc.MinEnemies
	} else {
		w.wave++
	}
	w.play(core.SoundWaveBegin, w.cfg.Audio.VoiceVolume)

	survivors := w.persons.Len()
	w.score += w.cfg.Scoring.Survivor * survivors
	for i := survivors; i < wc.Persons; i++ {
		w.spawnPerson(w.scroll.Update(w.rng.Float64() * w.size))
	}

	n := min(w.wave, wc.MaxEnemies)
	for i := 0; i < n; i++ {
		x := w.spawnX()
		y := wc.SpawnYMin + w.rng.Float64()*wc.SpawnYRange
		w.spawnEnemy(core.V(x, y), Lander)
		w.count++
	}
	w.emit(EventWave, ecs.None, w.camera, w.wave)
}

// spawnX draws an x outside the exclusion zone around the camera. After
// maxResample rejections it falls back to the point opposite the camera.
func (w *World) spawnX() float64 {
	exclude := w.cfg.Window.Width * w.cfg.Wave.SpawnExclude
	for i := 0; i < maxResample; i++ {
		x := w.scroll.Update(w.rng.Float64() * w.size)
		if !world.Visible(x, w.camera.X, exclude) {
			return x
		}
	}
	return w.scroll.Update(w.camera.X + w.size/2)
}
