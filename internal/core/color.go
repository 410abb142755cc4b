package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Sprite colors shared by both games.
const (
	ColorPlayer    = ColorBrightWhite
	ColorFlame     = ColorOrange
	ColorRock      = ColorGray
	ColorAsteroid  = ColorYellow
	ColorExplosion = ColorBrightRed
	ColorHUD       = ColorCyan
)
