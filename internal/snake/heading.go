// Package snake holds the deterministic snake state model: movement, growth,
// collision and direction arbitration on a fixed 32x24 grid. It does no I/O
// and reads no clock; the game loop drives it one tick at a time.
package snake

import "fmt"

// Board dimensions in cells. The board size is fixed.
const (
	GridWidth  = 32
	GridHeight = 24
)

// Position is a cell on the board. Values outside the grid are legal and
// mean the snake has left the board.
type Position struct {
	X, Y int
}

// Add returns p offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Heading is a direction of travel. The zero value is not a valid heading.
type Heading int

const (
	HeadingUp Heading = iota + 1
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

// Opposite returns the reverse heading. Invalid headings return themselves.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	return h
}

// Delta returns the one-cell offset for h. Y grows downward.
func (h Heading) Delta() Position {
	switch h {
	case HeadingUp:
		return Position{X: 0, Y: -1}
	case HeadingDown:
		return Position{X: 0, Y: 1}
	case HeadingLeft:
		return Position{X: -1, Y: 0}
	case HeadingRight:
		return Position{X: 1, Y: 0}
	}
	return Position{}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}
