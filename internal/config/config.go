// Package config holds the compiled-in settings of the board.
package config

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
)

const AppID = "io.freehandboard.app"

// Config is the application configuration. There is no file or flag
// layer; Default is the only source.
type Config struct {
	Title       string
	WindowSize  fyne.Size
	StrokeWidth float64
	Background  string
	// FadeDuration is how long the controls take to fade while a stroke
	// is being drawn.
	FadeDuration time.Duration
	LogLevel     slog.Level
}

func Default() Config {
	return Config{
		Title:        "Freehand Board",
		WindowSize:   fyne.NewSize(1024, 768),
		StrokeWidth:  2,
		Background:   "#FFFFFF",
		FadeDuration: 300 * time.Millisecond,
		LogLevel:     slog.LevelInfo,
	}
}
