package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"

	"hypermaze/internal/app"
	"hypermaze/internal/logging"
	"hypermaze/internal/maze"
	"hypermaze/internal/raycast"
	_ "hypermaze/internal/scenes"
	"hypermaze/internal/snapshot"

	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	script := flag.String("script", "f40", "camera path, e.g. \"f20 <8 r3\"")
	every := flag.Int("every", 10, "emit a frame every N script steps")
	out := flag.String("out", "frames", "output directory")
	parallel := flag.Int("parallel", 0, "concurrent frames, 0 uses every CPU")
	minimap := flag.Bool("minimap", false, "draw the top-down view in the corner")
	dump := flag.String("dump-map", "", "also write the loaded walls as JSON to this file")
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
	steps, err := snapshot.ParseScript(*script)
	if err != nil {
		log.Fatal("cannot parse script", zap.Error(err))
	}

	if *dump != "" {
		data, err := json.MarshalIndent(maze.Records(m.WallsAsDisk()), "", "  ")
		if err != nil {
			log.Fatal("cannot encode map", zap.Error(err))
		}
		if err := os.WriteFile(*dump, data, 0o644); err != nil {
			log.Fatal("cannot write map", zap.Error(err))
		}
		log.Info("map written", zap.String("path", *dump), zap.Int("walls", m.Len()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := snapshot.Options{
		Size:     cfg.Size(),
		Every:    *every,
		Parallel: *parallel,
		Dir:      *out,
		Prefix:   "frame",
		Minimap:  *minimap,
	}
	if _, err := snapshot.Render(ctx, m, r, steps, opts, log.With(zap.String("scene", name))); err != nil {
		log.Fatal("snapshot failed", zap.Error(err))
	}
}
