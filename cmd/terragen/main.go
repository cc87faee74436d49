//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terragen/internal/app"
	_ "terragen/internal/surfaces/rock"
	_ "terragen/internal/surfaces/sky"
	_ "terragen/internal/surfaces/terrain"
	_ "terragen/internal/surfaces/water"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg.Surface, cfg.Seed, cfg.Overrides.Map())
	if err != nil {
		log.Fatalf("generate %s: %v", cfg.Surface, err)
	}

	game := app.New(session, cfg.Scale, cfg.PanelWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("terragen: " + cfg.Surface)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
