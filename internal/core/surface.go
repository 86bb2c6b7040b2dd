package core

// Sprite identifies one of the images the game draws. Hosts decide what a
// sprite looks like; the game only ever asks for one by name.
type Sprite int

const (
	SpriteBird Sprite = iota
	SpriteTopPipe
	SpriteBottomPipe
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteBird:
		return "bird"
	case SpriteTopPipe:
		return "top-pipe"
	case SpriteBottomPipe:
		return "bottom-pipe"
	default:
		return "unknown"
	}
}

// TextStyle describes how overlay text should look.
type TextStyle struct {
	Size   float64 // Font size in world pixels
	Bold   bool
	Color  Color
	Stroke Color // Outline colour, ColorDefault for none
}

// Surface is the 2D drawing target the game renders into. Coordinates are in
// world units (board pixels); the host scales them to its output.
type Surface interface {
	// Clear erases the given region.
	Clear(region Rect)

	// DrawImage draws a sprite stretched over the rectangle (x, y, w, h).
	DrawImage(img Sprite, x, y, w, h float64)

	// DrawText draws text with its baseline-left corner at (x, y).
	DrawText(text string, x, y float64, style TextStyle)
}
