package game

// Threats returns every piece other than the one in slot index whose
// attack set, computed with friendly fire, covers target. Callers that
// want only checking pieces filter the result by side; the raw set also
// answers "is this square defended".
func (b *Board) Threats(index int, target Coordinate) []*Piece {
	var out []*Piece
	for _, p := range b.slots {
		if p == nil || p.Index == index {
			continue
		}
		if contains(b.Attacks(p, true), target) {
			out = append(out, p)
		}
	}
	return out
}

// hostileThreats filters Threats down to pieces opposing the given
// side. A
// same-side piece defending the target square is never a check.
func (b *Board) hostileThreats(index int, target Coordinate, side Side) []*Piece {
	var out []*Piece
	for _, p := range b.Threats(index, target) {
		if p.Side != side {
			out = append(out, p)
		}
	}
	return out
}

// sideInCheck reports whether side's king is currently attacked. A
// board with no king for the side reports no check; the engine treats
// that as an invalid position rather than a playable one.
func (b *Board) sideInCheck(side Side) bool {
	k, ok := b.King(side)
	if !ok {
		return false
	}
	return len(b.hostileThreats(k.Index, k.Position, side)) > 0
}
