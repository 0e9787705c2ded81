package game

import "fmt"

// Side represents one of the two players.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return s ^ 1
}

// Forward returns the direction the side's pawns advance along the Y
// axis: +1 for White, -1 for Black.
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// String returns the side name.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Kind represents the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the letter used for the kind in textual boards (uppercase).
func (k Kind) Char() byte {
	chars := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= len(chars) {
		return '?'
	}
	return chars[k]
}

// Piece is a single chessman. Index identifies the piece for the whole
// lifetime of a game: it is assigned at setup and never reused, even
// after the piece is captured. Position mutates as the piece moves;
// Kind mutates only when a pawn promotes.
type Piece struct {
	Index    int
	Side     Side
	Kind     Kind
	Position Coordinate
}

// Char returns the piece letter, uppercase for White and lowercase for
// Black.
func (p Piece) Char() byte {
	c := p.Kind.Char()
	if p.Side == Black {
		c += 'a' - 'A'
	}
	return c
}

// CanPromote reports whether the piece is a pawn standing on the far
// rank for its side (Y=7 advancing up, Y=0 advancing down).
func (p Piece) CanPromote() bool {
	if p.Kind != Pawn {
		return false
	}
	if p.Side == White {
		return p.Position.Y == 7
	}
	return p.Position.Y == 0
}

// onPawnStartRank reports whether a pawn still stands on its home rank,
// which is the only place the double step is available from.
func (p Piece) onPawnStartRank() bool {
	if p.Side == White {
		return p.Position.Y == 1
	}
	return p.Position.Y == 6
}

// String describes the piece for logs, e.g. "White Queen d1".
func (p Piece) String() string {
	return fmt.Sprintf("%v %v %v", p.Side, p.Kind, p.Position)
}
