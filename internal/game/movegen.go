package game

// Moves returns the squares p may legally move to under normal rules.
// Each move ray is walked in order; a square is kept only while it is
// in bounds, unoccupied and a hypothetical application leaves p's own
// side out of check. The first offset that fails ends its ray, which is
// how sliders respect blocking.
func (b *Board) Moves(p *Piece) []Coordinate {
	var out []Coordinate
	for _, ray := range p.MoveRays() {
		for _, off := range ray {
			dst := p.Position.Add(off)
			if dst.OutOfBounds() {
				break
			}
			if _, occupied := b.At(dst); occupied {
				break
			}
			if !b.safeAfterMove(p, dst) {
				break
			}
			out = append(out, dst)
		}
	}
	return out
}

// Attacks returns the squares p may attack. Per ray the first occupied
// square is the sole candidate; it counts when held by the opposing
// side, or by any side under friendlyFire. Friendly fire exists for
// threat and defense queries only, never for real captures.
func (b *Board) Attacks(p *Piece, friendlyFire bool) []Coordinate {
	var out []Coordinate
	for _, ray := range p.AttackRays() {
		for _, off := range ray {
			dst := p.Position.Add(off)
			if dst.OutOfBounds() {
				break
			}
			occ, ok := b.At(dst)
			if !ok {
				continue
			}
			if friendlyFire || occ.Side != p.Side {
				out = append(out, dst)
			}
			break
		}
	}
	return out
}

// MovesInCheck returns the squares p may move to while its side is in
// check. For every piece but the king the normal ray walk already
// demands the mover's side end up out of check, so the sets coincide.
// The king instead keeps only destinations no opposing piece threatens
// once it stands there.
func (b *Board) MovesInCheck(p *Piece) []Coordinate {
	if p.Kind != King {
		return b.Moves(p)
	}
	var out []Coordinate
	for _, ray := range p.MoveRays() {
		for _, off := range ray {
			dst := p.Position.Add(off)
			if dst.OutOfBounds() {
				break
			}
			if _, occupied := b.At(dst); occupied {
				break
			}
			if !b.kingSafeAt(p, dst) {
				break
			}
			out = append(out, dst)
		}
	}
	return out
}

// AttacksInCheck returns the captures available to p while its side is
// in check: legal attacks that resolve the check. For the king the
// destination must be free of opposing threats after the capture.
func (b *Board) AttacksInCheck(p *Piece) []Coordinate {
	var out []Coordinate
	for _, dst := range b.Attacks(p, false) {
		if p.Kind == King {
			if b.kingSafeAt(p, dst) {
				out = append(out, dst)
			}
			continue
		}
		if b.safeAfterMove(p, dst) {
			out = append(out, dst)
		}
	}
	return out
}

// safeAfterMove reports whether relocating p to dst (capturing any
// occupant) leaves p's own side out of check. The probe runs on a clone
// so concurrent readers never see a half-applied move.
func (b *Board) safeAfterMove(p *Piece, dst Coordinate) bool {
	sim := b.Clone()
	sim.apply(p.Index, dst)
	return !sim.sideInCheck(p.Side)
}

// kingSafeAt reports whether dst holds no opposing threats once the
// king stands there. Same-side pieces covering dst are discounted; a
// piece is never a threat to its own king.
func (b *Board) kingSafeAt(k *Piece, dst Coordinate) bool {
	sim := b.Clone()
	sim.apply(k.Index, dst)
	return len(sim.hostileThreats(k.Index, dst, k.Side)) == 0
}

func contains(set []Coordinate, c Coordinate) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}
