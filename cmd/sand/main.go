//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"sandfall/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseArgs("sand", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("scene %q: %v", cfg.Scene, err)
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("sandfall: " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(sim.Width()*cfg.Scale+cfg.HUDWidth, sim.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
