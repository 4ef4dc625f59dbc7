package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagSnapshot  string
	flagRecord    bool
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal UI and print a summary.

By default a simple autopilot flies the ship: it turns toward the nearest
enemy, matches its altitude, fires when lined up and always tries to pick
up colonists. With --autopilot=false the ship idles.

The final world state can be written as a msgpack snapshot. Two runs with
the same --seed, --fps and config produce identical snapshots.

Examples:
  defender sim --seed 7
  defender sim --ticks 36000 --difficulty hard --verbose
  defender sim --seed 7 --snapshot final.msgpack
  defender sim --record`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot fly the ship")
	simCmd.Flags().StringVar(&flagSnapshot, "snapshot", "", "Write the final world state to this file")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the scores database")
	simCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every simulation event")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "defender-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadDefender(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultDefenderConfig()
	}
	config.ApplyDefenderPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)

	w := defender.NewWorld(cfg, rand.New(rand.NewSource(seed)))
	w.Start()
	logger.Info("simulation starting", "seed", seed, "ticks", flagTicks, "fps", fps)

	for i := 0; i < flagTicks && !w.Over(); i++ {
		var ctl defender.Controls
		if flagAutopilot {
			ctl = autopilot(w.Snapshot())
		}
		frame := w.Step(dt, ctl)
		for _, ev := range frame.Events {
			logger.Debug(ev.Kind.String(),
				"tick", w.Tick(),
				"entity", ev.Entity,
				"x", math.Round(ev.Pos.X),
				"y", math.Round(ev.Pos.Y),
				"value", ev.Value,
			)
		}
	}

	st := w.Stats()
	logger.Info("simulation finished",
		"ticks", w.Tick(),
		"elapsed", fmt.Sprintf("%.1fs", w.Elapsed()),
		"over", w.Over(),
		"score", w.Score(),
		"wave", w.Wave(),
		"kills", st.Kills,
		"rescues", st.Rescues,
		"lost", st.PersonsLost,
		"mutations", st.Mutations,
	)

	fmt.Printf("seed %d: score %06d, wave %d, %d kills, %d rescues, %d colonists lost, %s simulated\n",
		seed, w.Score(), w.Wave(), st.Kills, st.Rescues, st.PersonsLost, formatSeconds(w.Elapsed()))

	if flagSnapshot != "" {
		data, err := defender.EncodeSnapshot(w.Snapshot())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(flagSnapshot, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot write snapshot: %v\n", err)
			os.Exit(1)
		}
		logger.Info("snapshot written", "path", flagSnapshot, "bytes", len(data))
	}

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		_, err = store.SaveRun(storage.RunRecord{
			GameID:      defaultGame,
			Seed:        seed,
			Score:       w.Score(),
			Wave:        w.Wave(),
			Kills:       st.Kills,
			Rescues:     st.Rescues,
			PersonsLost: st.PersonsLost,
			Mutations:   st.Mutations,
			Duration:    w.Elapsed(),
		})
		if err != nil {
			logger.Error("could not record run", "error", err)
		}
	}
}

// Autopilot tuning, in world units.
const (
	pilotAltitudeSlack = 12
	pilotFireWindow    = 30
	pilotCruiseRange   = 300
)

// autopilot picks controls from a snapshot. Snapshot positions are already
// projected next to the camera, so plain differences are shortest distances.
func autopilot(s defender.Snapshot) defender.Controls {
	ctl := defender.Controls{Rescue: true}
	if s.Player == nil {
		return ctl
	}
	p := s.Player

	best, found := 0.0, false
	var target defender.EnemyState
	for _, e := range s.Enemies {
		d := math.Abs(e.X-p.X) + math.Abs(e.Y-p.Y)
		if !found || d < best {
			best, found, target = d, true, e
		}
	}
	if !found {
		ctl.Right = true
		return ctl
	}

	dx, dy := target.X-p.X, target.Y-p.Y
	facingTarget := (dx >= 0) == (p.Facing >= 0)
	if !facingTarget || math.Abs(dx) > pilotCruiseRange {
		if dx >= 0 {
			ctl.Right = true
		} else {
			ctl.Left = true
		}
	}

	switch {
	case dy > pilotAltitudeSlack:
		ctl.Up = true
	case dy < -pilotAltitudeSlack:
		ctl.Down = true
	}

	ctl.Shoot = facingTarget && math.Abs(dy) < pilotFireWindow
	return ctl
}
