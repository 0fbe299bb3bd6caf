package main

import (
	"log/slog"
	"os"

	"github.com/llpevents/website/cmd/website/internal/configuration"
)

func setupLogger(config *configuration.Config, version string) {
	var level slog.Level

	switch config.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler

	if version == "development" {
		handler = slog.NewTextHandler(os.Stdout, options)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, options)
	}

	slog.SetDefault(slog.New(handler))
}
