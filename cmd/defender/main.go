// defender is a side-scrolling arcade shooter for the terminal: fly over a
// wrapping planet, shoot landers and keep them from carrying colonists off.
//
// Usage:
//
//	defender list              - List available games
//	defender play              - Play a round
//	defender menu              - Start menu with difficulty picker and scoreboard
//	defender serve             - Start SSH server for remote play
//	defender scores            - Show high scores and run history
//	defender sim               - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.defender/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-defender/internal/games/defender"
)

const defaultGame = "defender"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Defender - a wrap-around arcade shooter in your terminal",
	Long: `Defender is a terminal remake of the classic side-scrolling shooter.
Landers descend on a looping planet, grab colonists and mutate when they
reach the sky. Shoot them down, catch falling colonists and survive the
waves.

Available commands:
  list     - Show all available games
  play     - Play a round directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and past runs
  sim      - Run the simulation without a terminal UI

Examples:
  defender play
  defender play --difficulty hard --sound
  defender menu
  defender serve --ssh :2222
  defender scores --runs
  defender sim --ticks 3600 --seed 7 --snapshot final.msgpack`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.defender/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
