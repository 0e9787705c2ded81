package cli

import (
	"strings"
	"testing"

	"raychess/internal/game"
)

func runScript(t *testing.T, script string) (*game.Game, string) {
	t.Helper()
	g := game.NewGame()
	var out strings.Builder
	loop := New(g, strings.NewReader(script), &out, nil)
	if err := loop.Run(); err != nil {
		t.Fatalf("loop error: %v", err)
	}
	return g, out.String()
}

func TestLoopFoolsMate(t *testing.T) {
	script := strings.Join([]string{
		"5 1 5 3",
		"4 6 4 4",
		"6 1 6 3",
		"3 7 7 3",
	}, "\n")

	g, out := runScript(t, script)

	if !g.Checkmate() {
		t.Error("scripted fool's mate did not end in checkmate")
	}
	if !strings.Contains(out, "checkmate, Black wins") {
		t.Errorf("missing checkmate announcement in output:\n%s", out)
	}
}

func TestLoopRetriesOnMalformedInput(t *testing.T) {
	script := strings.Join([]string{
		"one two three four",
		"4 1",
		"9 9 9 9",
		"4 1 4 3",
		"exit",
		"y",
	}, "\n")

	g, out := runScript(t, script)

	if p, ok := g.Board().At(game.Coordinate{X: 4, Y: 3}); !ok || p.Kind != game.Pawn {
		t.Error("valid move after malformed input was not applied")
	}
	if !strings.Contains(out, "must be numbers") {
		t.Errorf("no complaint about non-numeric input:\n%s", out)
	}
	if !strings.Contains(out, "off the board") {
		t.Errorf("no complaint about out-of-range input:\n%s", out)
	}
}

func TestLoopExitConfirmation(t *testing.T) {
	script := strings.Join([]string{
		"exit",
		"n",
		"4 1 4 3",
		"exit",
		"y",
	}, "\n")

	g, out := runScript(t, script)

	if _, ok := g.Board().At(game.Coordinate{X: 4, Y: 3}); !ok {
		t.Error("declined exit did not return to the prompt")
	}
	if strings.Count(out, "really exit?") != 2 {
		t.Errorf("expected two exit confirmations:\n%s", out)
	}
}

func TestLoopReportsMissingPiece(t *testing.T) {
	script := strings.Join([]string{
		"4 4 4 5",
		"exit",
		"y",
	}, "\n")

	_, out := runScript(t, script)

	if !strings.Contains(out, "no piece on that square") {
		t.Errorf("missing NoSuchPiece message:\n%s", out)
	}
}

func TestLoopMovesQuery(t *testing.T) {
	script := strings.Join([]string{
		"moves 4 1",
		"exit",
		"y",
	}, "\n")

	_, out := runScript(t, script)

	if !strings.Contains(out, "moves: [e3 e4]") {
		t.Errorf("legal move listing missing for e2:\n%s", out)
	}
}

func TestRenderStartingPosition(t *testing.T) {
	out := Render(game.NewBoard().Slots())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("rendered %d lines, want 9", len(lines))
	}
	if lines[0] != "7  r n b q k b n r" {
		t.Errorf("rank 7 = %q", lines[0])
	}
	if lines[7] != "0  R N B Q K B N R" {
		t.Errorf("rank 0 = %q", lines[7])
	}
	if lines[3] != "4  . . . . . . . ." {
		t.Errorf("empty rank = %q", lines[3])
	}
}
