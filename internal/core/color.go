package core

// Color is a foreground color for a screen cell. The platform maps these to
// ANSI colors; the core only deals in symbolic values.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorWhite
	ColorGray
	ColorRed
)
