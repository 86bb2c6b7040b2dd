package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func newTestSurface(t *testing.T) *CellSurface {
	t.Helper()
	return NewCellSurface(core.NewScreen(1, 1), 480, 720, 80, 24)
}

func TestCellSurfaceFitsBoard(t *testing.T) {
	tests := []struct {
		name        string
		cols, rows  int
		expectW     int
		expectH     int
		expectScale float64
	}{
		{"height bound", 80, 24, 32, 24, 15},
		{"width bound", 40, 100, 40, 30, 12},
		{"tiny", 1, 1, 1, 1, 480},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewCellSurface(core.NewScreen(1, 1), 480, 720, tc.cols, tc.rows)
			if s.Screen().Width() != tc.expectW || s.Screen().Height() != tc.expectH {
				t.Errorf("screen = %dx%d, expected %dx%d", s.Screen().Width(), s.Screen().Height(), tc.expectW, tc.expectH)
			}
			if s.Scale() != tc.expectScale {
				t.Errorf("Scale() = %v, expected %v", s.Scale(), tc.expectScale)
			}
		})
	}
}

func TestCellSurfaceDrawBird(t *testing.T) {
	s := newTestSurface(t)
	s.DrawImage(core.SpriteBird, 60, 360, 68, 48)

	scr := s.Screen()
	for y := 12; y < 14; y++ {
		for x := 4; x < 8; x++ {
			if cell := scr.GetCell(x, y); cell.Rune != '█' || cell.Color != core.ColorBrightYellow {
				t.Errorf("cell (%d, %d) = %+v, expected bird body", x, y, cell)
			}
		}
	}
	if scr.Get(8, 12) != '▶' {
		t.Errorf("beak = %q, expected ▶", scr.Get(8, 12))
	}
	if scr.Get(3, 12) != ' ' || scr.Get(4, 14) != ' ' {
		t.Error("bird should not spill outside its cells")
	}
}

func TestCellSurfaceDrawPipesClipped(t *testing.T) {
	s := newTestSurface(t)
	s.DrawImage(core.SpriteTopPipe, 450, -256, 64, 512)
	s.DrawImage(core.SpriteBottomPipe, 450, 436, 64, 512)

	scr := s.Screen()
	// Top pipe ends at y=256 -> row 8 is its cap
	if scr.Get(30, 0) != '█' || scr.Get(30, 7) != '█' || scr.Get(30, 8) != '▀' {
		t.Errorf("top pipe rows = %q %q %q", scr.Get(30, 0), scr.Get(30, 7), scr.Get(30, 8))
	}
	// Bottom pipe starts at y=436 -> row 14 is its cap
	if scr.Get(30, 14) != '▄' || scr.Get(30, 23) != '█' {
		t.Errorf("bottom pipe rows = %q %q", scr.Get(30, 14), scr.Get(30, 23))
	}
	if scr.Get(30, 11) != ' ' {
		t.Error("the opening should stay clear")
	}
}

func TestCellSurfaceDrawText(t *testing.T) {
	s := newTestSurface(t)

	s.DrawText("GAME OVER", 120, 320, flappy.GameOverStyle)
	if row := s.Screen().Row(9); !strings.HasPrefix(row[8:], "GAME OVER") {
		t.Errorf("row 9 = %q, expected GAME OVER at column 8", row)
	}
	if cell := s.Screen().GetCell(8, 9); cell.Color != core.ColorRed {
		t.Errorf("text color = %v, expected red", cell.Color)
	}

	// Shifted left to fit
	s.DrawText("Press Enter to Retry", 400, 360, flappy.RetryStyle)
	if row := s.Screen().Row(11); !strings.HasSuffix(row, "Press Enter to Retry") {
		t.Errorf("row 11 = %q, expected the text flush right", row)
	}
}

func TestCellSurfaceRendersSession(t *testing.T) {
	s := newTestSurface(t)
	session := flappy.NewSession(config.DefaultFlappyConfig(), 1)
	session.Start()
	session.State().Score = 2.5
	session.Render(s)

	if !strings.HasPrefix(s.Screen().Row(0), "2.5") {
		t.Errorf("row 0 = %q, expected the score", s.Screen().Row(0))
	}

	s.Clear(core.NewRect(0, 0, 480, 720))
	if strings.TrimSpace(s.Screen().String()) != "" {
		t.Error("Clear should blank the board")
	}
}
