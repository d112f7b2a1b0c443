package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the platform renderer.
type Color uint8

// Predefined colors for runner elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightWhite
)
