// RayChess - a chess game built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"raychess/internal/storage"
	"raychess/internal/ui"
)

func main() {
	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: running without saved preferences: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	game := ui.NewGame(store)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("RayChess")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
