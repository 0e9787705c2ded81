package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raychess/internal/game"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	MoveHint       color.RGBA
	CaptureHint    color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	MutedTextColor color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{235, 217, 185, 255},
		DarkSquare:     color.RGBA{172, 130, 96, 255},
		SelectedSquare: color.RGBA{247, 241, 110, 170},
		MoveHint:       color.RGBA{110, 150, 100, 210},
		CaptureHint:    color.RGBA{190, 80, 70, 220},
		LastMoveColor:  color.RGBA{185, 195, 110, 90},
		CheckColor:     color.RGBA{255, 95, 95, 170},
		Background:     color.RGBA{38, 42, 50, 255},
		TextColor:      color.RGBA{225, 225, 228, 255},
		MutedTextColor: color.RGBA{150, 154, 162, 255},
	}
}

// Renderer draws the board, highlights and pieces. All positions it
// consumes are engine coordinates; all it produces are pixels.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a renderer for a board of the given pixel size.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the checkered squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px, py := r.CoordToScreen(game.Coordinate{X: x, Y: y})
			c := r.theme.LightSquare
			if (x+y)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, float32(px), float32(py),
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the last move, the current selection and, when
// hints are enabled, the legal move and capture markers.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, sel *game.Coordinate, moves, attacks []game.Coordinate, lastFrom, lastTo *game.Coordinate) {
	if lastFrom != nil {
		r.fillSquare(screen, *lastFrom, r.theme.LastMoveColor)
	}
	if lastTo != nil {
		r.fillSquare(screen, *lastTo, r.theme.LastMoveColor)
	}
	if sel != nil {
		r.fillSquare(screen, *sel, r.theme.SelectedSquare)
	}
	for _, c := range moves {
		r.drawMoveDot(screen, c)
	}
	for _, c := range attacks {
		r.drawCaptureRing(screen, c)
	}
}

// DrawCheck tints the checked king's square.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingPos game.Coordinate) {
	r.fillSquare(screen, kingPos, r.theme.CheckColor)
}

// DrawPieces draws every occupied slot of the snapshot.
func (r *Renderer) DrawPieces(screen *ebiten.Image, slots []*game.Piece) {
	for _, p := range slots {
		if p == nil {
			continue
		}
		x, y := r.CoordToScreen(p.Position)
		r.sprites.DrawPieceAt(screen, p, x, y)
	}
}

// fillSquare draws a colored overlay on one square.
func (r *Renderer) fillSquare(screen *ebiten.Image, c game.Coordinate, col color.RGBA) {
	px, py := r.CoordToScreen(c)
	vector.DrawFilledRect(screen, float32(px), float32(py),
		float32(r.squareSize), float32(r.squareSize), col, false)
}

// drawMoveDot marks a legal destination square.
func (r *Renderer) drawMoveDot(screen *ebiten.Image, c game.Coordinate) {
	px, py := r.CoordToScreen(c)
	cx := float32(px) + float32(r.squareSize)/2
	cy := float32(py) + float32(r.squareSize)/2
	vector.DrawFilledCircle(screen, cx, cy, float32(r.squareSize)*0.14, r.theme.MoveHint, false)
}

// drawCaptureRing marks a legal capture square.
func (r *Renderer) drawCaptureRing(screen *ebiten.Image, c game.Coordinate) {
	px, py := r.CoordToScreen(c)
	cx := float32(px) + float32(r.squareSize)/2
	cy := float32(py) + float32(r.squareSize)/2
	vector.StrokeCircle(screen, cx, cy, float32(r.squareSize)*0.42, 4, r.theme.CaptureHint, false)
}

// CoordToScreen converts an engine coordinate to the square's top-left
// pixel. Y=0 (White's back rank) renders at the bottom.
func (r *Renderer) CoordToScreen(c game.Coordinate) (int, int) {
	return c.X * r.squareSize, (7 - c.Y) * r.squareSize
}

// ScreenToCoord converts a pixel position to an engine coordinate. The
// second result is false outside the board.
func (r *Renderer) ScreenToCoord(x, y int) (game.Coordinate, bool) {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return game.Coordinate{}, false
	}
	return game.Coordinate{X: x / r.squareSize, Y: 7 - y/r.squareSize}, true
}

// Theme returns the active theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
