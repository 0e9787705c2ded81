package game

// Game orchestrates turn order, move application, captures, promotion
// and check bookkeeping. All mutable state lives on the struct; there
// are no package-level globals.
type Game struct {
	board     *Board
	turn      Side
	inCheck   bool
	checkmate bool
	threats   []*Piece
}

// NewGame returns a game at the standard starting position, White to
// move.
func NewGame() *Game {
	return NewGameFrom(NewBoard(), White)
}

// NewGameFrom returns a game over a prepared board with the given side
// to move. Check state is computed immediately.
func NewGameFrom(b *Board, turn Side) *Game {
	g := &Game{board: b, turn: turn}
	g.updateCheck()
	if g.inCheck {
		g.updateCheckmate()
	}
	return g
}

// Board returns the live board. Callers outside the package treat it as
// read-only.
func (g *Game) Board() *Board { return g.board }

// Turn returns the side to move.
func (g *Game) Turn() Side { return g.turn }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.inCheck }

// Checkmate reports whether the game has ended in mate. The state is
// terminal: once set, MovePiece accepts nothing further.
func (g *Game) Checkmate() bool { return g.checkmate }

// Threats returns the pieces currently checking the side to move's
// king. Empty when not in check.
func (g *Game) Threats() []*Piece { return g.threats }

// MovePiece applies the move or capture from from to to and reports
// whether anything was applied. An empty from square yields
// ErrNoSuchPiece. Every other failure (wrong side to move, destination
// outside the legal set, a move that fails to resolve check, input
// after mate) is an ordinary false with no state change.
func (g *Game) MovePiece(from, to Coordinate) (bool, error) {
	p, ok := g.board.At(from)
	if !ok {
		return false, ErrNoSuchPiece
	}
	if g.checkmate || p.Side != g.turn {
		return false, nil
	}

	applied := g.tryMove(p, to)
	if !applied {
		if occ, occupied := g.board.At(to); occupied {
			applied = g.tryAttack(p, occ, to)
		}
	}

	g.promoteEligiblePawns()
	if applied {
		g.turn = g.turn.Other()
	}
	g.updateCheck()
	if g.inCheck {
		g.updateCheckmate()
	}
	return applied, nil
}

// LegalMoves returns the destination squares and capture squares for
// the piece at from, for UI highlighting. The in-check variants apply
// when the piece belongs to a side currently in check. An empty square
// yields ErrNoSuchPiece.
func (g *Game) LegalMoves(from Coordinate) (moves, attacks []Coordinate, err error) {
	p, ok := g.board.At(from)
	if !ok {
		return nil, nil, ErrNoSuchPiece
	}
	if g.inCheck && p.Side == g.turn {
		return g.board.MovesInCheck(p), g.board.AttacksInCheck(p), nil
	}
	return g.board.Moves(p), g.board.Attacks(p, false), nil
}

// tryMove relocates p to dst when dst is in p's legal move set for the
// current check state. Nothing mutates on failure.
func (g *Game) tryMove(p *Piece, dst Coordinate) bool {
	legal := g.board.Moves(p)
	if g.inCheck {
		legal = g.board.MovesInCheck(p)
	}
	if !contains(legal, dst) {
		return false
	}
	p.Position = dst
	return true
}

// tryAttack captures occ with p when dst is in p's legal attack set for
// the current check state. A same-side occupant is never captured. The
// captured slot is cleared before p relocates.
func (g *Game) tryAttack(p, occ *Piece, dst Coordinate) bool {
	if occ.Side == p.Side {
		return false
	}
	legal := g.board.Attacks(p, false)
	if g.inCheck {
		legal = g.board.AttacksInCheck(p)
	}
	if !contains(legal, dst) {
		return false
	}
	g.board.Remove(occ.Index)
	p.Position = dst
	return true
}

// promoteEligiblePawns replaces every far-rank pawn with a queen in
// place: the index, side and position all survive the kind change.
func (g *Game) promoteEligiblePawns() {
	for _, p := range g.board.slots {
		if p != nil && p.CanPromote() {
			p.Kind = Queen
		}
	}
}

// updateCheck recomputes whether the side to move is in check and which
// pieces deliver it.
func (g *Game) updateCheck() {
	g.inCheck = false
	g.threats = nil
	k, ok := g.board.King(g.turn)
	if !ok {
		return
	}
	threats := g.board.hostileThreats(k.Index, k.Position, g.turn)
	if len(threats) > 0 {
		g.inCheck = true
		g.threats = threats
	}
}

// updateCheckmate declares mate when the checked king has no move or
// capture of its own left. Only the king's escape squares count; an
// interposition or a capture by another defender does not avert the
// verdict.
func (g *Game) updateCheckmate() {
	k, ok := g.board.King(g.turn)
	if !ok {
		return
	}
	g.checkmate = len(g.board.MovesInCheck(k))+len(g.board.AttacksInCheck(k)) == 0
}
