package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-defender/internal/audio"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/platform/tui"
	"github.com/vovakirdan/tui-defender/internal/registry"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start playing. The game id defaults to "defender".

Controls:
  Arrows/WASD - Fly (left/right thrust, up/down climb)
  Space/X     - Fire laser
  E/Z         - Pick up a colonist
  P/Esc       - Pause
  B           - Back (while paused or after game over)
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  defender play
  defender play --difficulty hard
  defender play --sound --volume 0.5
  defender play --config ./my-defender.yaml --log-file defender.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects through the speaker")
		c.Flags().Float64Var(&flagVolume, "volume", 1.0, "Master volume for sound effects (0-1)")
	}
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failures are reported and the game
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound returns the speaker-backed sink when --sound is set.
func openSound(logger *log.Logger) (core.SoundSink, func()) {
	if !flagSound {
		return core.SilentSink{}, func() {}
	}

	player := audio.NewPlayer(flagVolume)
	if err := player.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		logger.Warn("could not open speaker", "error", err)
		return core.SilentSink{}, func() {}
	}
	return player, player.Cleanup
}

// configureGames pushes CLI overrides into the game packages before any
// instance is created.
func configureGames() {
	defender.SetConfigPath(flagConfig)
	defender.SetDifficultyPreset(flagDifficulty)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'defender list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile, "defender")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	configureGames()
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sink, closeSound := openSound(logger)

	cfg := terminalConfig()
	logger.Info("round starting", "game", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)

	_, runErr := tui.Run(game, store, cfg, tui.WithSound(sink), tui.WithLogger(logger))

	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
