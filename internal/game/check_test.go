package game

import "testing"

func TestThreatsIncludeDefenders(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: King, Position: Coordinate{4, 0}},
		Piece{Index: 1, Side: White, Kind: Rook, Position: Coordinate{4, 1}},
		Piece{Index: 2, Side: Black, Kind: Rook, Position: Coordinate{4, 7}},
		Piece{Index: 3, Side: Black, Kind: King, Position: Coordinate{0, 7}},
	)

	// The white rook screens the king, so only it attacks e2; with
	// friendly fire the king defending its rook counts too.
	threats := b.Threats(1, Coordinate{4, 1})
	if len(threats) != 2 {
		t.Fatalf("threats on e2 = %v, want black rook and white king", threats)
	}

	hostile := b.hostileThreats(1, Coordinate{4, 1}, White)
	if len(hostile) != 1 || hostile[0].Index != 2 {
		t.Errorf("hostile threats on e2 = %v, want only the black rook", hostile)
	}
}

func TestThreatsExcludeSelf(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Rook, Position: Coordinate{0, 0}},
		Piece{Index: 1, Side: White, Kind: King, Position: Coordinate{4, 0}},
		Piece{Index: 2, Side: Black, Kind: King, Position: Coordinate{4, 7}},
	)

	for _, th := range b.Threats(0, Coordinate{0, 0}) {
		if th.Index == 0 {
			t.Errorf("piece reported as threatening its own square")
		}
	}
}

func TestSideInCheck(t *testing.T) {
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: King, Position: Coordinate{4, 0}},
		Piece{Index: 1, Side: Black, Kind: Rook, Position: Coordinate{4, 7}},
		Piece{Index: 2, Side: Black, Kind: King, Position: Coordinate{0, 7}},
	)

	if !b.sideInCheck(White) {
		t.Error("white king on an open file with a rook is not in check")
	}
	if b.sideInCheck(Black) {
		t.Error("black reported in check with no attacker")
	}
}

func TestBackRankMate(t *testing.T) {
	// White: Ra8, Ka1. Black: Kh8 boxed in by its own pawns.
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Rook, Position: Coordinate{0, 7}},
		Piece{Index: 1, Side: White, Kind: King, Position: Coordinate{0, 0}},
		Piece{Index: 2, Side: Black, Kind: King, Position: Coordinate{7, 7}},
		Piece{Index: 3, Side: Black, Kind: Pawn, Position: Coordinate{6, 6}},
		Piece{Index: 4, Side: Black, Kind: Pawn, Position: Coordinate{7, 6}},
	)
	g := NewGameFrom(b, Black)

	t.Log("mate position:\n" + b.String())
	t.Log("in check:", g.InCheck(), "threats:", g.Threats())

	if !g.InCheck() {
		t.Fatal("black not reported in check")
	}
	if !g.Checkmate() {
		t.Error("expected checkmate but got false")
	}
}

func TestKingCapturesChecker(t *testing.T) {
	// The checking rook stands next to the king and is undefended.
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Rook, Position: Coordinate{6, 7}},
		Piece{Index: 1, Side: White, Kind: King, Position: Coordinate{0, 0}},
		Piece{Index: 2, Side: Black, Kind: King, Position: Coordinate{7, 7}},
	)
	g := NewGameFrom(b, Black)

	t.Log("position:\n" + b.String())

	if !g.InCheck() {
		t.Fatal("black not reported in check")
	}
	if g.Checkmate() {
		t.Error("expected NOT checkmate: the king can take the rook")
	}

	applied, err := g.MovePiece(Coordinate{7, 7}, Coordinate{6, 7})
	if err != nil || !applied {
		t.Fatalf("king capture rejected: applied=%v err=%v", applied, err)
	}
	if g.InCheck() {
		t.Error("check not resolved by capturing the rook")
	}
}

func TestDefendedCheckerStaysSafeFromKing(t *testing.T) {
	// Same corner, but the rook is defended: capturing it is no escape
	// and the king has nowhere else to go.
	b := NewBoardWith(
		Piece{Index: 0, Side: White, Kind: Rook, Position: Coordinate{6, 7}},
		Piece{Index: 1, Side: White, Kind: Rook, Position: Coordinate{6, 0}},
		Piece{Index: 2, Side: White, Kind: King, Position: Coordinate{0, 0}},
		Piece{Index: 3, Side: Black, Kind: King, Position: Coordinate{7, 7}},
		Piece{Index: 4, Side: Black, Kind: Pawn, Position: Coordinate{7, 6}},
	)
	g := NewGameFrom(b, Black)

	if !g.InCheck() {
		t.Fatal("black not reported in check")
	}

	king := mustAt(t, b, Coordinate{7, 7})
	if got := b.AttacksInCheck(king); len(got) != 0 {
		t.Errorf("king may capture the defended rook: %v", got)
	}
	if !g.Checkmate() {
		t.Error("expected checkmate against the defended rook")
	}
}
