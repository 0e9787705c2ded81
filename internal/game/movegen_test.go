package game

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sorted returns a copy of cs ordered by rank then file, so move sets
// compare independently of ray enumeration order.
func sorted(cs []Coordinate) []Coordinate {
	out := append([]Coordinate(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func mustAt(t *testing.T, b *Board, c Coordinate) *Piece {
	t.Helper()
	p, ok := b.At(c)
	if !ok {
		t.Fatalf("no piece at %v", c)
	}
	return p
}

func TestPawnInitialMoves(t *testing.T) {
	b := NewBoard()
	pawn := mustAt(t, b, Coordinate{0, 1})

	got := sorted(b.Moves(pawn))
	want := []Coordinate{{0, 2}, {0, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn a2 moves mismatch (-want +got):\n%s", diff)
	}

	// After the first step only the single advance remains.
	pawn.Position = Coordinate{0, 2}
	got = sorted(b.Moves(pawn))
	want = []Coordinate{{0, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn a3 moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnBlockedBySlider(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Pawn, Position: Coordinate{3, 1}},
		Piece{Index: 1, Side: Black, Kind: Rook, Position: Coordinate{3, 2}},
		Piece{Index: 2, Side: White, Kind: King, Position: Coordinate{7, 0}},
		Piece{Index: 3, Side: Black, Kind: King, Position: Coordinate{7, 7}},
	)
	pawn := mustAt(t, b, Coordinate{3, 1})

	if got := b.Moves(pawn); len(got) != 0 {
		t.Errorf("blocked pawn has moves %v, want none", got)
	}
	if got := b.Attacks(pawn, false); len(got) != 0 {
		t.Errorf("pawn attacks straight ahead: %v", got)
	}
}

func TestPawnDiagonalCapture(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Pawn, Position: Coordinate{4, 3}},
		Piece{Index: 1, Side: Black, Kind: Pawn, Position: Coordinate{3, 4}},
		Piece{Index: 2, Side: White, Kind: Knight, Position: Coordinate{5, 4}},
		Piece{Index: 3, Side: White, Kind: King, Position: Coordinate{7, 0}},
		Piece{Index: 4, Side: Black, Kind: King, Position: Coordinate{7, 7}},
	)
	pawn := mustAt(t, b, Coordinate{4, 3})

	got := sorted(b.Attacks(pawn, false))
	want := []Coordinate{{3, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn captures mismatch (-want +got):\n%s", diff)
	}

	// Friendly fire includes the defended knight as well.
	got = sorted(b.Attacks(pawn, true))
	want = []Coordinate{{3, 4}, {5, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("friendly-fire attacks mismatch (-want +got):\n%s", diff)
	}
}

func TestKnightInitialMoves(t *testing.T) {
	b := NewBoard()
	knight := mustAt(t, b, Coordinate{1, 0})

	got := sorted(b.Moves(knight))
	want := []Coordinate{{0, 2}, {2, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("knight b1 moves mismatch (-want +got):\n%s", diff)
	}
}

func TestRookBlockedRay(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Rook, Position: Coordinate{0, 0}},
		Piece{Index: 1, Side: Black, Kind: Pawn, Position: Coordinate{0, 1}},
		Piece{Index: 2, Side: Black, Kind: Rook, Position: Coordinate{0, 2}},
		Piece{Index: 3, Side: White, Kind: King, Position: Coordinate{4, 0}},
		Piece{Index: 4, Side: Black, Kind: King, Position: Coordinate{4, 7}},
	)
	rook := mustAt(t, b, Coordinate{0, 0})

	moves := b.Moves(rook)
	if contains(moves, Coordinate{0, 1}) || contains(moves, Coordinate{0, 2}) {
		t.Errorf("rook slides through the blocker: %v", moves)
	}

	got := sorted(b.Attacks(rook, false))
	want := []Coordinate{{0, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rook attacks mismatch (-want +got):\n%s", diff)
	}
	if contains(got, Coordinate{0, 2}) {
		t.Error("rook attacks through the first occupied square")
	}
}

func TestMoveGenLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	before := b.String()

	for _, p := range b.Pieces() {
		b.Moves(p)
		b.Attacks(p, true)
	}

	if after := b.String(); after != before {
		t.Errorf("generation mutated the board:\nbefore\n%s\nafter\n%s", before, after)
	}
}

func TestKingNeverMovesIntoThreat(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: King, Position: Coordinate{4, 0}},
		Piece{Index: 1, Side: Black, Kind: Rook, Position: Coordinate{0, 1}},
		Piece{Index: 2, Side: Black, Kind: King, Position: Coordinate{4, 7}},
	)
	king := mustAt(t, b, Coordinate{4, 0})

	moves := b.Moves(king)
	t.Log("king escape squares:", moves)
	for _, dst := range moves {
		sim := b.Clone()
		sim.apply(king.Index, dst)
		if threats := sim.hostileThreats(king.Index, dst, king.Side); len(threats) != 0 {
			t.Errorf("king may move to threatened square %v (threats %v)", dst, threats)
		}
	}

	// The whole second rank is covered by the rook.
	for _, dst := range []Coordinate{{3, 1}, {4, 1}, {5, 1}} {
		if contains(moves, dst) {
			t.Errorf("king walks into the rook's line at %v", dst)
		}
	}
	for _, dst := range []Coordinate{{3, 0}, {5, 0}} {
		if !contains(moves, dst) {
			t.Errorf("king misses safe square %v", dst)
		}
	}
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	// The d-file knight shields its king from the rook above.
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: King, Position: Coordinate{3, 0}},
		Piece{Index: 1, Side: White, Kind: Knight, Position: Coordinate{3, 3}},
		Piece{Index: 2, Side: Black, Kind: Rook, Position: Coordinate{3, 7}},
		Piece{Index: 3, Side: Black, Kind: King, Position: Coordinate{7, 7}},
	)
	knight := mustAt(t, b, Coordinate{3, 3})

	if got := b.Moves(knight); len(got) != 0 {
		t.Errorf("pinned knight has moves %v, want none", got)
	}
}
