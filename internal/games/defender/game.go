package defender

import (
	"math/rand"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/highscore"
	"github.com/vovakirdan/tui-defender/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard",
// "fixed"). Unknown values clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts World to the platform's registry.Game interface.
type Game struct {
	world   *World
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfgErr  error
	preset  config.DifficultyPreset // Overrides difficultyPreset when set

	board    *highscore.Board
	rank     int
	recorded bool
	last     Frame
}

// New creates a defender game with an empty high score board.
func New() *Game {
	return &Game{board: highscore.NewBoard()}
}

var (
	_ registry.ScoreKeeper      = (*Game)(nil)
	_ registry.RunReporter      = (*Game)(nil)
	_ registry.DifficultySetter = (*Game)(nil)
)

func init() {
	registry.Register("defender", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "defender" }

// Title returns the display name.
func (g *Game) Title() string { return "Defender" }

// Reset loads the configuration and starts a fresh round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	cfg, err := config.LoadDefender(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultDefenderConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyDefenderPreset(&cfg, preset)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.world = NewWorld(cfg, g.rng)
	g.world.Start()
	g.rank = 0
	g.recorded = false
	g.last = Frame{}
}

// SetDifficulty selects the preset for this instance only. It takes effect
// on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// ConfigError returns the error from the last config load, if any. The
// game falls back to the built-in defaults in that case.
func (g *Game) ConfigError() error { return g.cfgErr }

// SetHighScores replaces the board shown on the paused screen.
func (g *Game) SetHighScores(scores []int) {
	g.board = highscore.NewBoard(scores...)
}

// HighScores returns the board.
func (g *Game) HighScores() *highscore.Board { return g.board }

// World exposes the simulation.
func (g *Game) World() *World { return g.world }

// LastFrame returns the events and sounds of the most recent step.
func (g *Game) LastFrame() Frame { return g.last }

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionRestart) && g.world.Over() {
		g.world.Start()
		g.rank = 0
		g.recorded = false
		g.last = Frame{}
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	g.last = g.world.Step(g.runtime.Dt(), ControlsFrom(in))

	if g.world.Over() && !g.recorded {
		g.recorded = true
		g.rank = g.board.Add(g.world.Score())
	}
	return core.StepResult{State: g.State(), Sounds: g.last.Sounds}
}

// State returns the platform-level state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return g.world.State()
}

// RunStats describes the current round for the run history.
func (g *Game) RunStats() registry.RunStats {
	if g.world == nil {
		return registry.RunStats{}
	}
	st := g.world.Stats()
	return registry.RunStats{
		Score:       g.world.Score(),
		Wave:        g.world.Wave(),
		Kills:       st.Kills,
		Rescues:     st.Rescues,
		PersonsLost: st.PersonsLost,
		Mutations:   st.Mutations,
		Duration:    g.world.Elapsed(),
	}
}

// Snapshot returns the world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Render draws the world and, while paused or after the round, the
// overlay with the high score board.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	g.world.Render(dst)
	if g.world.Mode() == ModePaused {
		g.renderOverlay(dst)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	title, hint := "PAUSED", "P resume  Q quit"
	if g.world.Over() {
		title, hint = "GAME OVER", "R restart  Q quit"
	}
	lines := g.board.Lines()

	boxW := 26
	boxH := len(lines) + 7
	x := (dst.Width() - boxW) / 2
	y := max(0, (dst.Height()-boxH)/2)
	box := core.NewRect(x, y, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightBlue)

	dst.DrawTextCentered(y+1, title, core.ColorBrightYellow)
	if g.world.Over() && g.rank > 0 {
		dst.DrawTextCentered(y+2, "NEW HIGH SCORE", core.ColorBrightGreen)
	}
	dst.DrawTextCentered(y+3, "HIGH SCORES", core.ColorBrightWhite)
	for i, line := range lines {
		c := core.ColorWhite
		if g.world.Over() && i+1 == g.rank {
			c = core.ColorBrightGreen
		}
		dst.DrawTextCentered(y+4+i, line, c)
	}
	if len(lines) == 0 {
		dst.DrawTextCentered(y+4, "------", core.ColorGray)
	}
	dst.DrawTextCentered(y+boxH-2, hint, core.ColorGray)
}
