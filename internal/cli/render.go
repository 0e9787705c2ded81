// Package cli implements the terminal front end: a textual board
// renderer and the interactive command loop driving the rules engine.
// All string parsing lives here; the engine only ever sees coordinates.
package cli

import (
	"strings"

	"raychess/internal/game"
)

// Render draws an ordered slot snapshot as an 8x8 grid with rank 8 on
// top. White pieces print uppercase, black lowercase, empty squares as
// dots. The snapshot is read-only; rendering never touches the engine.
func Render(slots []*game.Piece) string {
	occupied := make(map[game.Coordinate]*game.Piece, len(slots))
	for _, p := range slots {
		if p != nil {
			occupied[p.Position] = p
		}
	}

	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		sb.WriteByte('0' + byte(y))
		sb.WriteByte(' ')
		for x := 0; x < 8; x++ {
			ch := byte('.')
			if p, ok := occupied[game.Coordinate{X: x, Y: y}]; ok {
				ch = p.Char()
			}
			sb.WriteByte(' ')
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   0 1 2 3 4 5 6 7\n")
	return sb.String()
}
