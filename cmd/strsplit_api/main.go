package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/strsplit/internal/api/router"
	"github.com/DjordjeVuckovic/strsplit/internal/api/server"
	"github.com/DjordjeVuckovic/strsplit/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/strsplit/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/strsplit_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	level, err := env.LogLevel()
	if err != nil {
		slog.Error("Invalid log level", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(level)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	heathChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, heathChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "strsplit API is running")
	})

	router.NewSplitRouter(s.Echo).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
