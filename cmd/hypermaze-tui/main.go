package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"hypermaze/internal/app"
	"hypermaze/internal/game"
	"hypermaze/internal/logging"
	"hypermaze/internal/raycast"
	_ "hypermaze/internal/scenes"
	"hypermaze/internal/tui"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file; the terminal is busy")
	flag.Parse()

	log := zap.NewNop()
	if *logFile != "" {
		var err error
		if log, err = logging.New(cfg.LogLevel, cfg.LogFormat, *logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("hypermaze-tui failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, log *zap.Logger) error {
	m, name, err := cfg.LoadMaze(log)
	if err != nil {
		return err
	}
	view, err := cfg.LoadView()
	if err != nil {
		return err
	}
	r, err := raycast.New(view)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v := tui.New(screen, game.NewSession(name, game.New(m), r, log), cfg.TPS, log)
	if err := v.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
