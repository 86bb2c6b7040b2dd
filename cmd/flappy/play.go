package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagPlayName  string
	flagPlaySound bool
	flagPlayMono  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  S/Enter        - Start
  Space/Up/X     - Flap
  Enter          - Retry (after game over)
  Tab            - Edit player name
  Ctrl+S         - Save a screenshot
  ?              - Toggle help
  Q/Esc/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --name Ada --sound
  flappy play --mono
  flappy play --seed 42 --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayName, "name", "", "Player name (default from config)")
	playCmd.Flags().BoolVar(&flagPlaySound, "sound", false, "Play sound effects")
	playCmd.Flags().BoolVar(&flagPlayMono, "mono", false, "Use a grayscale theme")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("flappy")

	game, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()

	// Open score storage
	store := openStore(logger)
	sound := openSound(flagPlaySound, logger)

	theme := tui.DefaultTheme()
	if flagPlayMono {
		theme = tui.MonochromeTheme()
	}

	runErr := tui.Run(tui.Options{
		Game: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:      store,
		Sound:      sound,
		PlayerName: flagPlayName,
		Theme:      &theme,
	})

	// Close resources before potential exit
	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
