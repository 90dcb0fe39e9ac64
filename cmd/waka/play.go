package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/waka-arcade/internal/audio"
	"github.com/vovakirdan/waka-arcade/internal/core"
	"github.com/vovakirdan/waka-arcade/internal/games/waka"
	"github.com/vovakirdan/waka-arcade/internal/platform/tui"
	"github.com/vovakirdan/waka-arcade/internal/registry"
	"github.com/vovakirdan/waka-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  M           - Mute/unmute sound
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, fewer and slower ghosts
  normal - Stock settings
  hard   - Fewer lives, more and faster ghosts

Examples:
  waka play waka
  waka play waka --difficulty hard
  waka play waka_zen --config ./my-waka.yaml
  waka play waka --seed 42 --no-sound`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'waka list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Config path and difficulty must be set before the game is created
	waka.SetConfigPath(flagConfig)
	waka.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var player *audio.Player
	if !flagNoSound {
		player = audio.NewPlayer()
		if initErr := player.Initialize(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
			player = nil
		}
	}

	runErr := tui.Run(game, store, player, cfg)

	if player != nil {
		player.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
