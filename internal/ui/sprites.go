// Package ui implements the graphical front end using Ebitengine. Like
// the terminal front end it is a thin collaborator: it renders board
// snapshots, maps clicks to coordinates and relays them to the rules
// engine, which makes every legality decision.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"raychess/internal/game"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// spriteKey identifies one sprite per side and kind.
type spriteKey struct {
	side game.Side
	kind game.Kind
}

// SpriteManager rasterizes the embedded SVG piece set and hands out
// sprites by side and kind.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Rasterize larger for sharp downscaling
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// assetName maps a side and kind to its embedded file, e.g. "wQ.svg".
func assetName(s game.Side, k game.Kind) string {
	prefix := "w"
	if s == game.Black {
		prefix = "b"
	}
	return fmt.Sprintf("assets/pieces/%s%c.svg", prefix, k.Char())
}

// loadPieces rasterizes every embedded SVG at renderScale resolution.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, side := range []game.Side{game.White, game.Black} {
		for kind := game.Pawn; kind <= game.King; kind++ {
			path := assetName(side, kind)
			data, err := pieceAssets.ReadFile(path)
			if err != nil {
				log.Printf("Failed to read piece asset %s: %v", path, err)
				continue
			}

			icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
			if err != nil {
				log.Printf("Failed to parse SVG %s: %v", path, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{side, kind}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// DrawPieceAt draws the sprite for a piece at the given pixel position.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p *game.Piece, x, y int) {
	if p == nil {
		return
	}
	sprite := sm.pieces[spriteKey{p.Side, p.Kind}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1.0/sm.renderScale, 1.0/sm.renderScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
