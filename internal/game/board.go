package game

import "strings"

// Board holds every piece slot for one game. Slots are addressed by
// piece Index; capturing a piece clears its slot, and slots are never
// compacted or reused. At most one piece occupies any coordinate.
type Board struct {
	slots []*Piece
}

// backRank lists the kinds on each side's home rank, file a through h.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board populated with the standard 32-piece layout.
// Indices 0-15 belong to White (pawns first, then the back rank a-h),
// 16-31 to Black in the same order.
func NewBoard() *Board {
	b := &Board{slots: make([]*Piece, 32)}
	idx := 0
	for _, side := range []Side{White, Black} {
		pawnRank, homeRank := 1, 0
		if side == Black {
			pawnRank, homeRank = 6, 7
		}
		for x := 0; x < 8; x++ {
			b.slots[idx] = &Piece{Index: idx, Side: side, Kind: Pawn, Position: Coordinate{x, pawnRank}}
			idx++
		}
		for x := 0; x < 8; x++ {
			b.slots[idx] = &Piece{Index: idx, Side: side, Kind: backRank[x], Position: Coordinate{x, homeRank}}
			idx++
		}
	}
	return b
}

// NewBoardWith returns a board holding exactly the given pieces, slotted
// by their Index. Intended for setting up analysis positions.
func NewBoardWith(pieces ...Piece) *Board {
	max := -1
	for _, p := range pieces {
		if p.Index > max {
			max = p.Index
		}
	}
	b := &Board{slots: make([]*Piece, max+1)}
	for _, p := range pieces {
		cp := p
		b.slots[p.Index] = &cp
	}
	return b
}

// At returns the piece occupying c, if any.
func (b *Board) At(c Coordinate) (*Piece, bool) {
	for _, p := range b.slots {
		if p != nil && p.Position == c {
			return p, true
		}
	}
	return nil, false
}

// ByIndex returns the piece in slot i, if it is still on the board.
func (b *Board) ByIndex(i int) (*Piece, bool) {
	if i < 0 || i >= len(b.slots) || b.slots[i] == nil {
		return nil, false
	}
	return b.slots[i], true
}

// King returns the side's king.
func (b *Board) King(s Side) (*Piece, bool) {
	for _, p := range b.slots {
		if p != nil && p.Side == s && p.Kind == King {
			return p, true
		}
	}
	return nil, false
}

// Remove clears slot i. The index stays retired for the rest of the game.
func (b *Board) Remove(i int) {
	if i >= 0 && i < len(b.slots) {
		b.slots[i] = nil
	}
}

// Slots returns the ordered snapshot of every slot, empty ones included.
// Renderers iterate this; they must not mutate the pieces.
func (b *Board) Slots() []*Piece {
	out := make([]*Piece, len(b.slots))
	copy(out, b.slots)
	return out
}

// Pieces returns the pieces still on the board.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, len(b.slots))
	for _, p := range b.slots {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a structurally independent copy of the board. Legality
// probing applies hypothetical moves to a clone so the live board is
// never observed mid-probe.
func (b *Board) Clone() *Board {
	c := &Board{slots: make([]*Piece, len(b.slots))}
	for i, p := range b.slots {
		if p != nil {
			cp := *p
			c.slots[i] = &cp
		}
	}
	return c
}

// apply relocates the piece in slot index to dst, clearing any occupant
// there first. No legality checks are made; callers probe hypothetical
// positions with it on cloned boards.
func (b *Board) apply(index int, dst Coordinate) {
	if occ, ok := b.At(dst); ok && occ.Index != index {
		b.Remove(occ.Index)
	}
	if p, ok := b.ByIndex(index); ok {
		p.Position = dst
	}
}

// String renders the board as an 8x8 grid with rank 8 on top, uppercase
// for White and lowercase for Black.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		sb.WriteByte('1' + byte(y))
		sb.WriteByte(' ')
		for x := 0; x < 8; x++ {
			ch := byte('.')
			if p, ok := b.At(Coordinate{x, y}); ok {
				ch = p.Char()
			}
			sb.WriteByte(' ')
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
