package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sky is the board background.
var Sky = color.RGBA{R: 112, G: 197, B: 206, A: 255}

// palette maps core.Color to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:          {R: 220, G: 40, B: 40, A: 255},
	core.ColorGreen:        {R: 83, G: 160, B: 50, A: 255},
	core.ColorYellow:       {R: 230, G: 190, B: 40, A: 255},
	core.ColorBlue:         {R: 40, G: 90, B: 220, A: 255},
	core.ColorWhite:        {R: 255, G: 255, B: 255, A: 255},
	core.ColorBlack:        {R: 0, G: 0, B: 0, A: 255},
	core.ColorBrightGreen:  {R: 140, G: 220, B: 80, A: 255},
	core.ColorBrightYellow: {R: 250, G: 220, B: 60, A: 255},
	core.ColorCyan:         {R: 60, G: 200, B: 220, A: 255},
	core.ColorGray:         {R: 128, G: 128, B: 128, A: 255},
}

// RGBA returns the screen color for c. Unknown colors are black.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// fontHeight is the pixel height basicfont glyphs are drawn at unscaled.
const fontHeight = 13

// imageSurface draws frames onto an Ebiten image in board pixels.
type imageSurface struct {
	dst  *ebiten.Image
	face font.Face
}

func newImageSurface(dst *ebiten.Image) *imageSurface {
	return &imageSurface{dst: dst, face: basicfont.Face7x13}
}

func (s *imageSurface) Clear(region core.Rect) {
	vector.DrawFilledRect(s.dst, float32(region.X), float32(region.Y), float32(region.W), float32(region.H), Sky, false)
}

func (s *imageSurface) DrawImage(img core.Sprite, x, y, w, h float64) {
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	switch img {
	case core.SpriteBird:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, RGBA(core.ColorBrightYellow), true)
		// Eye and beak
		vector.DrawFilledCircle(s.dst, fx+fw*0.7, fy+fh*0.3, fh*0.12, RGBA(core.ColorWhite), true)
		vector.DrawFilledRect(s.dst, fx+fw*0.85, fy+fh*0.5, fw*0.2, fh*0.2, RGBA(core.ColorRed), true)
	case core.SpriteTopPipe, core.SpriteBottomPipe:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, RGBA(core.ColorGreen), false)
		capH := float32(24)
		capY := fy
		if img == core.SpriteTopPipe {
			capY = fy + fh - capH
		}
		vector.DrawFilledRect(s.dst, fx-3, capY, fw+6, capH, RGBA(core.ColorBrightGreen), false)
		vector.StrokeRect(s.dst, fx-3, capY, fw+6, capH, 2, RGBA(core.ColorBlack), false)
	default:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, RGBA(core.ColorGray), false)
	}
}

// DrawText draws text with its baseline at y, scaling the bitmap font to
// style.Size pixels.
func (s *imageSurface) DrawText(str string, x, y float64, style core.TextStyle) {
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / fontHeight
	}

	if style.Stroke != core.ColorDefault {
		for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			s.drawText(str, x+d[0], y+d[1], scale, RGBA(style.Stroke))
		}
	}
	c := RGBA(style.Color)
	s.drawText(str, x, y, scale, c)
	if style.Bold {
		s.drawText(str, x+1, y, scale, c)
	}
}

func (s *imageSurface) drawText(str string, x, y, scale float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(s.dst, str, s.face, op)
}
