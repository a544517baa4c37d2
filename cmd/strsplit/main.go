package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/strsplit/internal/demo"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := demo.Run(os.Stdout, cfg.Cases); err != nil {
		slog.Error("Failed to run demo", "error", err)
		os.Exit(1)
	}
}
