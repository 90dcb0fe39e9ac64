package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/waka-arcade/internal/platform/tui"
	"github.com/vovakirdan/waka-arcade/internal/registry"
	"github.com/vovakirdan/waka-arcade/internal/storage"
)

var (
	flagScoresCSV         bool
	flagScoresStats       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game mode",
	Long: `Display the top 10 high scores for the specified game mode.

Examples:
  waka scores waka
  waka scores waka --stats
  waka scores waka --csv > scores.csv
  waka scores waka --interactive`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresCSV, "csv", false, "Export all scores as CSV to stdout")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate score statistics")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'waka list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresCSV {
		if err := exportCSV(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'waka play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if flagScoresStats {
		fmt.Println()
		printStats(store, gameID)
	}
}

// exportCSV writes every recorded score for the game to stdout as CSV.
func exportCSV(store *storage.Store, gameID string) error {
	scores, err := store.AllScores(gameID)
	if err != nil {
		return err
	}
	return gocsv.Marshal(&scores, os.Stdout)
}

// printStats shows aggregate score statistics and run totals.
func printStats(store *storage.Store, gameID string) {
	scores, err := store.AllScores(gameID)
	if err != nil || len(scores) == 0 {
		return
	}

	values := make([]float64, len(scores))
	for i, s := range scores {
		// AllScores returns descending; Quantile needs ascending.
		values[len(scores)-1-i] = float64(s.Score)
	}

	mean, std := stat.MeanStdDev(values, nil)
	median := stat.Quantile(0.5, stat.Empirical, values, nil)

	fmt.Println("Statistics:")
	fmt.Printf("  games:  %d\n", len(values))
	fmt.Printf("  mean:   %.1f\n", mean)
	fmt.Printf("  median: %.1f\n", median)
	if len(values) > 1 {
		fmt.Printf("  stddev: %.1f\n", std)
	}

	if gs, err := store.GetGameStats(gameID); err == nil && gs.Runs > 0 {
		fmt.Printf("  best level reached: %d\n", gs.BestLevel)
		fmt.Printf("  total dots eaten:   %d\n", gs.TotalDots)
	}
}
