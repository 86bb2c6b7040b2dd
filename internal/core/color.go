package core

// Color represents a foreground color for a screen cell or overlay text.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBlack
	ColorBrightGreen
	ColorBrightYellow
	ColorCyan
	ColorGray
)
