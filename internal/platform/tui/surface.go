package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2.0

// CellSurface draws world-space frames onto a Screen. World units are board
// pixels; each cell covers Scale x Scale*cellAspect of them.
type CellSurface struct {
	screen *core.Screen
	scale  float64 // World units per column
}

// NewCellSurface sizes screen to the largest board that fits into
// maxCols x maxRows cells and returns a surface drawing onto it.
func NewCellSurface(screen *core.Screen, boardW, boardH float64, maxCols, maxRows int) *CellSurface {
	maxCols = max(maxCols, 1)
	maxRows = max(maxRows, 1)

	scale := math.Max(boardW/float64(maxCols), boardH/(cellAspect*float64(maxRows)))
	cols := int(math.Ceil(boardW / scale))
	rows := int(math.Ceil(boardH / (scale * cellAspect)))
	screen.Resize(min(cols, maxCols), min(rows, maxRows))

	return &CellSurface{screen: screen, scale: scale}
}

// Screen returns the target buffer.
func (c *CellSurface) Screen() *core.Screen {
	return c.screen
}

// Scale returns world units per column.
func (c *CellSurface) Scale() float64 {
	return c.scale
}

// cells converts a world rectangle to the half-open cell range it touches.
func (c *CellSurface) cells(x, y, w, h float64) (x0, y0, x1, y1 int) {
	sy := c.scale * cellAspect
	x0 = int(math.Floor(x / c.scale))
	y0 = int(math.Floor(y / sy))
	x1 = int(math.Ceil((x + w) / c.scale))
	y1 = int(math.Ceil((y + h) / sy))
	return x0, y0, x1, y1
}

// Clear blanks the cells covering region.
func (c *CellSurface) Clear(region core.Rect) {
	x0, y0, x1, y1 := c.cells(region.X, region.Y, region.W, region.H)
	c.screen.ClearRect(x0, y0, x1, y1)
}

// DrawImage fills the cells covering the sprite's rectangle.
func (c *CellSurface) DrawImage(img core.Sprite, x, y, w, h float64) {
	x0, y0, x1, y1 := c.cells(x, y, w, h)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	switch img {
	case core.SpriteBird:
		c.screen.FillRect(x0, y0, x1, y1, '█', core.ColorBrightYellow)
		c.screen.SetCell(x1-1, y0, '▶', core.ColorRed)
	case core.SpriteTopPipe:
		c.screen.FillRect(x0, y0, x1, y1, '█', core.ColorGreen)
		c.screen.FillRect(x0, y1-1, x1, y1, '▀', core.ColorBrightGreen)
	case core.SpriteBottomPipe:
		c.screen.FillRect(x0, y0, x1, y1, '█', core.ColorGreen)
		c.screen.FillRect(x0, y0, x1, y0+1, '▄', core.ColorBrightGreen)
	default:
		c.screen.FillRect(x0, y0, x1, y1, '?', core.ColorGray)
	}
}

// DrawText writes text with its baseline at world y. The text is shifted
// left if it would run off the right edge.
func (c *CellSurface) DrawText(text string, x, y float64, style core.TextStyle) {
	col := int(math.Floor(x / c.scale))
	row := int(math.Floor(y/(c.scale*cellAspect))) - 1
	row = max(row, 0)

	n := utf8.RuneCountInString(text)
	if col+n > c.screen.Width() {
		col = max(c.screen.Width()-n, 0)
	}

	color := style.Color
	if color == core.ColorDefault {
		color = core.ColorWhite
	}
	c.screen.DrawText(col, row, text, color)
}
