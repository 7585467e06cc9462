//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"layerpaint/internal/app"
	"layerpaint/internal/layer"
	"layerpaint/internal/session"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	reg := layer.Default()
	s, err := session.New(cfg.Session(), reg)
	if err != nil {
		log.Fatalf("new session: %v", err)
	}

	game := app.New(cfg, s, reg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("layerpaint — " + cfg.Policy.String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
