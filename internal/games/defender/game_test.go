package defender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: seed})
	require.NoError(t, g.ConfigError())
	return g
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("defender"))
	g, err := registry.Create("defender")
	require.NoError(t, err)
	assert.Equal(t, "Defender", g.Title())
}

func TestGameStepStartsFirstWave(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 5, res.State.Wave)
	assert.False(t, res.State.GameOver)
	require.NotEmpty(t, res.Sounds)
	assert.Equal(t, core.SoundWaveBegin, res.Sounds[len(res.Sounds)-1].Sound)
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, 2)
	g.Step(core.NewInputFrame())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	assert.True(t, res.State.Paused)
	tick := g.World().Tick()

	g.Step(core.NewInputFrame())
	assert.Equal(t, tick, g.World().Tick())

	res = g.Step(in)
	assert.False(t, res.State.Paused)
}

func TestGameRecordsScoreOnceAndRestarts(t *testing.T) {
	g := newTestGame(t, 3)
	g.SetHighScores([]int{5, 3})
	g.Step(core.NewInputFrame())

	w := g.World()
	w.score = 4
	player, _ := w.PlayerPos()
	spawnOrb(w, player)

	var res core.StepResult
	for i := 0; i < 120 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
	}
	require.True(t, res.State.GameOver)
	assert.Equal(t, []int{5, 4, 3}, g.HighScores().Scores())

	g.Step(core.NewInputFrame())
	assert.Equal(t, 3, g.HighScores().Len(), "score is recorded once")

	stats := g.RunStats()
	assert.Equal(t, 4, stats.Score)
	assert.Equal(t, 5, stats.Wave)
	assert.Greater(t, stats.Duration, 0.0)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.True(t, w.PlayerAlive())
}

func TestGameRenderShowsHUDAndOverlay(t *testing.T) {
	g := newTestGame(t, 4)
	g.SetHighScores([]int{1200, 300})
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(100, 30)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "SCORE 000000")
	assert.Contains(t, screen.Row(0), "WAVE 5")
	assert.NotContains(t, screen.String(), "HIGH SCORES")

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	screen.Clear()
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "HIGH SCORES")
	assert.Contains(t, out, "001200")
	assert.Contains(t, out, "000300")
}

func TestRenderPlacesPlayerAndGround(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	holdWave(w)
	screen := core.NewScreen(80, 24)

	w.Render(screen)

	assert.Contains(t, screen.String(), string(glyphShipRight))
	assert.Equal(t, strings.Repeat(string(glyphGround), 80), screen.Row(23))
}

func TestRenderTinyScreen(t *testing.T) {
	w := newTestWorld(t, constRand(0.5))
	screen := core.NewScreen(10, 3)

	assert.NotPanics(t, func() { w.Render(screen) })
}

func TestGameSetDifficulty(t *testing.T) {
	g := New()
	g.SetDifficulty("hard")
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 9})

	cfg := g.World().Config()
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)

	g.SetDifficulty("fixed")
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 9})
	assert.False(t, g.World().Config().Difficulty.Enabled)
}
