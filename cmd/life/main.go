//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifelab/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(session, cfg.Scale, cfg.TPS)
	grid := session.Grid()

	ebiten.SetWindowTitle("lifelab — " + session.Rules().String())
	ebiten.SetWindowSize(grid.Cols()*cfg.Scale, grid.Rows()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
