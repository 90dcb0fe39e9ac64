// waka is a terminal maze arcade: guide the muncher through a lattice of
// corridors, eat every dot, grab the fruit, dodge the ghosts.
//
// Usage:
//
//	waka list              - List available game modes
//	waka play <game>       - Play a game mode
//	waka serve             - Start SSH server for remote play
//	waka scores <game>     - Show high scores for a game mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.waka/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/waka-arcade/internal/games/waka"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "waka",
	Short: "Waka - a dot-munching maze game for your terminal",
	Long: `Waka is a terminal maze game. Eat every dot to clear the level,
grab the fruit before it disappears, and stay away from the ghosts.

Available commands:
  list     - Show all available game modes
  play     - Play a game mode
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  waka list
  waka play waka
  waka play waka_zen --difficulty easy
  waka serve --ssh :2222
  waka scores waka --stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.waka/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
