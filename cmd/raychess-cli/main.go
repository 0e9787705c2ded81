// Command raychess-cli plays chess in the terminal against another
// human at the same keyboard. It is a thin wrapper over the rules
// engine: board rendering and input parsing happen here, all legality
// decisions in internal/game.
package main

import (
	"flag"
	"log"
	"os"

	"raychess/internal/cli"
	"raychess/internal/game"
	"raychess/internal/storage"
)

var nosave = flag.Bool("nosave", false, "do not record finished games or read preferences")

func main() {
	flag.Parse()

	var store *storage.Storage
	if !*nosave {
		var err error
		store, err = storage.NewStorage()
		if err != nil {
			log.Printf("Warning: storage unavailable, games will not be recorded: %v", err)
		} else {
			defer store.Close()
		}
	}

	loop := cli.New(game.NewGame(), os.Stdin, os.Stdout, store)
	if store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: failed to load preferences: %v", err)
		} else {
			loop.ConfirmExit = prefs.ConfirmExit
		}
	}

	if err := loop.Run(); err != nil {
		log.Fatal(err)
	}
}
