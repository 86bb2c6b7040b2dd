package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/leaderboard"
	"github.com/vovakirdan/tui-flappy/internal/scheduler"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimFrames    int
	flagSimAutopilot bool
	flagSimSave      bool
	flagSimName      string
	flagSimBoard     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a display on a virtual clock. Each round that
ends is logged and immediately retried.

Without --autopilot the bird never flaps, which is useful for checking
physics and spawn timing. With it, a simple bot steers for the gaps.

Examples:
  flappy sim --frames 3600
  flappy sim --frames 36000 --autopilot --seed 7
  flappy sim --autopilot --save --name bot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Frames to simulate")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let a bot flap")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save finished rounds to the scores database")
	simCmd.Flags().StringVar(&flagSimName, "name", "sim", "Player name for recorded rounds")
	simCmd.Flags().BoolVar(&flagSimBoard, "leaderboard", true, "Print the leaderboard when done")
}

// simOptions configures a headless run.
type simOptions struct {
	Game      config.FlappyConfig
	TickRate  int
	Seed      int64
	Frames    int
	Autopilot bool
	Name      string
	OnRound   func(simRound) // Optional
}

// simRound is one finished round.
type simRound struct {
	Number int
	Score  int
	Reason flappy.EndReason
	Frames uint64 // Frames the round lasted
}

// simReport summarises a run.
type simReport struct {
	Frames      uint64
	Elapsed     time.Duration // Virtual time
	Rounds      []simRound
	HighScore   int
	Score       float64 // Score of the round still in progress
	Leaderboard []leaderboard.Entry
}

// simulate plays one session on a virtual clock. A round that ends is
// retried on the same frame.
func simulate(ctx context.Context, opts simOptions) (simReport, error) {
	sess := flappy.NewSession(opts.Game, opts.Seed)
	sess.SetPlayerName(opts.Name)

	var rounds []simRound
	var roundTicks uint64
	onFrame := func() {
		if opts.Autopilot && flappy.Autopilot(sess.State()) {
			sess.Jump()
		}
		// Ticks resets on retry, so read it before events are handled.
		sess.Tick()
		roundTicks = sess.State().Ticks

		over := false
		for _, e := range sess.DrainEvents() {
			g, ok := e.(flappy.GameOverEvent)
			if !ok {
				continue
			}
			r := simRound{
				Number: len(rounds) + 1,
				Score:  g.Score,
				Reason: g.Reason,
				Frames: roundTicks,
			}
			rounds = append(rounds, r)
			if opts.OnRound != nil {
				opts.OnRound(r)
			}
			over = true
		}
		if over {
			sess.Retry()
			sess.DrainEvents()
		}
	}
	onSpawn := func() { sess.SpawnTick() }

	loop := scheduler.NewLoop(opts.TickRate, opts.Game.Timing.SpawnInterval, onFrame, onSpawn)
	if sess.Start() {
		loop.StartSpawns()
	}
	sess.DrainEvents()

	err := loop.Run(ctx, opts.Frames, nil)
	return simReport{
		Frames:      loop.Frames(),
		Elapsed:     loop.Now(),
		Rounds:      rounds,
		HighScore:   sess.HighScore(),
		Score:       sess.Score(),
		Leaderboard: sess.Leaderboard(),
	}, err
}

func runSim(cmd *cobra.Command, _ []string) {
	logger := newLogger("flappy-sim")

	game, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSimSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "frames", flagSimFrames, "fps", flagFPS, "seed", seed, "autopilot", flagSimAutopilot)

	report, err := simulate(ctx, simOptions{
		Game:      game,
		TickRate:  flagFPS,
		Seed:      seed,
		Frames:    flagSimFrames,
		Autopilot: flagSimAutopilot,
		Name:      flagSimName,
		OnRound: func(r simRound) {
			logger.Info("round over", "round", r.Number, "score", r.Score, "reason", r.Reason, "frames", r.Frames)
			saveSimRound(store, logger, flagSimName, r)
		},
	})
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	logger.Info("simulation finished",
		"frames", report.Frames,
		"virtual_time", report.Elapsed,
		"rounds", len(report.Rounds),
		"high_score", report.HighScore,
		"current_score", flappy.FormatScore(report.Score),
	)

	if flagSimBoard && len(report.Leaderboard) > 0 {
		printLeaderboard(cmd.OutOrStdout(), report.Leaderboard)
	}
}

func saveSimRound(store *storage.Store, logger *log.Logger, name string, r simRound) {
	if store == nil {
		return
	}
	if _, err := store.SaveScore(name, r.Score, r.Reason.String()); err != nil {
		logger.Warn("score not saved", "round", r.Number, "error", err)
	}
}
