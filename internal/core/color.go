package core

// Color is a foreground color for a screen cell. The platform maps it to
// ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightGreen
	ColorBrightRed
	ColorBrightWhite
)
