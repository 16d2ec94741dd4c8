package core

// Color is a foreground color for a screen cell. The platform maps each
// value to a terminal style.
type Color uint8

// Colors available to games. Tile colors walk up this list as values grow.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBlue
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightRed
	ColorBrightMagenta
)
