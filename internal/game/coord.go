// Package game implements the chess rules engine: board state, ray-based
// move and attack generation, check detection and the move-application
// state machine. Rendering and input parsing live with the callers; the
// package accepts and returns plain coordinates.
package game

import "fmt"

// Coordinate is a position on the board. X is the file (0=a) and Y is
// the rank (0=1), so White pawns start on Y=1 and advance toward Y=7.
type Coordinate struct {
	X, Y int
}

// Add returns the componentwise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y}
}

// Sub returns the componentwise difference of c and o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{c.X - o.X, c.Y - o.Y}
}

// Scale returns c with both components multiplied by n.
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{c.X * n, c.Y * n}
}

// OutOfBounds reports whether c lies outside the 8x8 board.
func (c Coordinate) OutOfBounds() bool {
	return c.X >= 8 || c.X <= -1 || c.Y >= 8 || c.Y <= -1
}

// String returns the algebraic form of the coordinate (e.g. "e4").
// Off-board coordinates render as raw components.
func (c Coordinate) String() string {
	if c.OutOfBounds() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%c", 'a'+c.X, '1'+c.Y)
}
