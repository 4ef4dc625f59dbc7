package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/highscore"
	"github.com/vovakirdan/tui-defender/internal/registry"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagRuns   bool
	flagLimit  int
	flagExport string
	flagImport string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and run history",
	Long: `Display the top high scores for a game (default "defender").

The board can be exported to and imported from a plain text file with one
score per line.

Examples:
  defender scores
  defender scores --runs --limit 20
  defender scores --export board.txt
  defender scores --import board.txt
  defender scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", highscore.Limit, "Number of rows to show")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write the top scores to a text file")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Add the scores from a text file")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'defender list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", game.Title())
		}
	case flagImport != "":
		err = importScores(store, gameID, flagImport)
	case flagExport != "":
		err = exportScores(store, gameID, flagExport)
	case flagRuns:
		err = printRuns(store, gameID, game.Title())
	default:
		err = printScores(store, gameID, game.Title())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %06d    %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	sum, err := store.Summary(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No finished runs yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %4s  %5s  %5s  %4s  %4s  %6s\n",
		"Date", "Score", "Wave", "Kills", "Saved", "Lost", "Mut", "Time")
	for _, r := range runs {
		fmt.Printf("  %-16s  %06d  %4d  %5d  %5d  %4d  %4d  %6s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Score, r.Wave, r.Kills, r.Rescues, r.PersonsLost, r.Mutations,
			formatSeconds(r.Duration))
	}

	fmt.Println()
	fmt.Printf("%d runs, best %06d, best wave %d, %d kills, %s played\n",
		sum.Runs, sum.BestScore, sum.BestWave, sum.TotalKills, formatSeconds(sum.PlayTime))
	return nil
}

func exportScores(store *storage.Store, gameID, path string) error {
	values, err := store.TopScoreValues(gameID, highscore.Limit)
	if err != nil {
		return err
	}
	board := highscore.NewBoard(values...)
	if err := os.WriteFile(path, []byte(board.String()), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	fmt.Printf("Exported %d scores to %s\n", board.Len(), path)
	return nil
}

func importScores(store *storage.Store, gameID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	board, err := highscore.Parse(string(data))
	if err != nil {
		return err
	}
	for _, s := range board.Scores() {
		if _, err := store.SaveScore(gameID, s); err != nil {
			return err
		}
	}
	fmt.Printf("Imported %d scores from %s\n", board.Len(), path)
	return nil
}

// formatSeconds renders a duration in seconds as m:ss.
func formatSeconds(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
