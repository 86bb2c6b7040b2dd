package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/leaderboard"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
	flagScoresBrowse bool
	flagScoresAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show persisted high scores",
	Long: `Display the best recorded rounds from the scores database.

Examples:
  flappy scores
  flappy scores --limit 5
  flappy scores --player Ada
  flappy scores --all
  flappy scores --browse
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's most recent rounds")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded round, best first")
}

func runScores(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(out, "All scores cleared.")
		return
	}

	if flagScoresBrowse {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	switch {
	case flagScoresPlayer != "":
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	case flagScoresAll:
		scores, err = store.AllScores()
	default:
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
		return
	}

	printScoresTable(out, scores)

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Fprintln(out)
	printStats(out, stats)
}

// printScoresTable renders stored rounds in rank order.
func printScoresTable(w io.Writer, scores []storage.ScoreEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "PLAYER", "SCORE", "ENDED BY", "DATE"})
	for i, entry := range scores {
		t.AppendRow(table.Row{
			i + 1,
			entry.PlayerName,
			entry.Score,
			entry.Reason,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t.Render()
}

func printStats(w io.Writer, stats *storage.Stats) {
	fmt.Fprintf(w, "Rounds: %d  Players: %d  Best: %d  Average: %.1f\n",
		stats.Rounds, stats.Players, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printLeaderboard renders an in-memory leaderboard.
func printLeaderboard(w io.Writer, entries []leaderboard.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Leaderboard")

	t.AppendHeader(table.Row{"#", "PLAYER", "SCORE"})
	for i, e := range entries {
		t.AppendRow(table.Row{i + 1, e.Name, e.Score})
	}

	t.Render()
}
