package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes or RGB.
type Color uint8

// Palette used by the road scene and HUD.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBrown
	ColorSkyBlue
	ColorForest
)
