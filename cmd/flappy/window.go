package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var (
	flagWindowName  string
	flagWindowSound bool
	flagWindowScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play at the board's native resolution.

Controls:
  S/Enter        - Start
  Space/Up/X     - Flap
  Enter          - Retry (after game over)
  Q/Esc          - Quit

Examples:
  flappy window
  flappy window --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowName, "name", "", "Player name (default from config)")
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", false, "Play sound effects")
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Window size relative to the board")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger("flappy")

	game, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := openSound(flagWindowSound, logger)

	runErr := window.Run(window.Options{
		Game:       game,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Store:      store,
		Sound:      sound,
		PlayerName: flagWindowName,
		Scale:      flagWindowScale,
	})

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
