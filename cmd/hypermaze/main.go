//go:build ebiten

package main

import (
	"errors"
	"flag"

	"hypermaze/internal/app"
	"hypermaze/internal/game"
	"hypermaze/internal/logging"
	"hypermaze/internal/raycast"
	_ "hypermaze/internal/scenes"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	m, name, err := cfg.LoadMaze(log)
	if err != nil {
		log.Fatal("cannot load maze", zap.Error(err))
	}
	view, err := cfg.LoadView()
	if err != nil {
		log.Fatal("cannot load view settings", zap.Error(err))
	}
	r, err := raycast.New(view)
	if err != nil {
		log.Fatal("invalid view settings", zap.Error(err))
	}

	session := game.NewSession(name, game.New(m), r, log)
	size := cfg.Size()
	g := app.New(session, size, cfg.Scale, cfg.Panel, log)

	ebiten.SetWindowTitle("hypermaze - " + name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.Panel, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game stopped", zap.Error(err))
	}
}
