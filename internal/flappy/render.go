package flappy

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Overlay text styles.
var (
	ScoreStyle    = core.TextStyle{Size: 32, Bold: true, Color: core.ColorWhite, Stroke: core.ColorBlack}
	GameOverStyle = core.TextStyle{Size: 40, Bold: true, Color: core.ColorRed}
	RetryStyle    = core.TextStyle{Size: 20, Color: core.ColorWhite}
)

// Overlay texts.
const (
	GameOverText = "GAME OVER"
	RetryText    = "Press Enter to Retry"
)

// FormatScore renders a score the way the HUD shows it: "0", "1.5", "12".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Render draws the current frame. Before the first start only the bird is
// shown; after a game over the final frame is shown with the game over
// overlay on top.
func Render(dst core.Surface, s *State) {
	board := s.cfg.Board
	dst.Clear(core.NewRect(0, 0, board.Width, board.Height))

	b := s.Bird
	dst.DrawImage(core.SpriteBird, b.X, b.Y, b.W, b.H)
	if s.Phase == PhaseNotStarted {
		return
	}

	for _, p := range s.Pipes.All() {
		dst.DrawImage(p.Kind.Sprite(), p.X, p.Y, p.W, p.H)
	}

	dst.DrawText(FormatScore(s.Score), 10, 40, ScoreStyle)

	if s.Phase == PhaseGameOver {
		RenderGameOver(dst, s)
	}
}

// RenderGameOver draws the game over overlay.
func RenderGameOver(dst core.Surface, s *State) {
	board := s.cfg.Board
	dst.DrawText(GameOverText, board.Width/4, board.Height/2-40, GameOverStyle)
	dst.DrawText(RetryText, board.Width/4.5+40, board.Height/2, RetryStyle)
}

// Render draws the session's current frame.
func (s *Session) Render(dst core.Surface) {
	Render(dst, s.state)
}
