package main

import (
	"log/slog"
	"os"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/state"
	"FreehandBoard/internal/ui"

	"github.com/gogpu/gg"
)

func main() {
	cfg := config.Default()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)
	gg.SetLogger(log.With("component", "gg"))

	log.Info("starting", "title", cfg.Title, "colors", len(state.Palette))
	ui.RunApp(cfg, log)
}
