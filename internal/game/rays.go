package game

// A Ray is an ordered sequence of offsets of increasing magnitude in a
// single direction. Enumeration along a ray stops at the first offset
// that fails a legality condition, which is what makes sliding pieces
// respect blocking without per-kind special cases. Knights, kings and
// pawn steps use rays of length one.
type Ray []Coordinate

var (
	orthogonalDirs = []Coordinate{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs   = []Coordinate{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs        = []Coordinate{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	knightOffsets = []Coordinate{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// slidingRays builds one seven-offset ray per direction.
func slidingRays(dirs []Coordinate) []Ray {
	rays := make([]Ray, len(dirs))
	for i, d := range dirs {
		ray := make(Ray, 0, 7)
		for n := 1; n <= 7; n++ {
			ray = append(ray, d.Scale(n))
		}
		rays[i] = ray
	}
	return rays
}

// singleRays wraps each offset in its own length-one ray.
func singleRays(offsets []Coordinate) []Ray {
	rays := make([]Ray, len(offsets))
	for i, off := range offsets {
		rays[i] = Ray{off}
	}
	return rays
}

var (
	rookRays   = slidingRays(orthogonalDirs)
	bishopRays = slidingRays(diagonalDirs)
	queenRays  = slidingRays(allDirs)
	knightRays = singleRays(knightOffsets)
	kingRays   = singleRays(allDirs)
)

// MoveRays returns the rays the piece may move along from its current
// position. For pawns the forward ray carries the double step only
// while the pawn stands on its start rank.
func (p Piece) MoveRays() []Ray {
	switch p.Kind {
	case Pawn:
		step := Coordinate{0, p.Side.Forward()}
		ray := Ray{step}
		if p.onPawnStartRank() {
			ray = append(ray, step.Scale(2))
		}
		return []Ray{ray}
	case Knight:
		return knightRays
	case Bishop:
		return bishopRays
	case Rook:
		return rookRays
	case Queen:
		return queenRays
	case King:
		return kingRays
	}
	return nil
}

// AttackRays returns the rays the piece attacks along. Sliders, knights
// and kings attack along their move rays; pawns attack one step along
// each forward diagonal instead of their forward ray.
func (p Piece) AttackRays() []Ray {
	if p.Kind == Pawn {
		f := p.Side.Forward()
		return []Ray{{{-1, f}}, {{1, f}}}
	}
	return p.MoveRays()
}
