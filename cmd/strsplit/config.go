package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/strsplit/internal/demo"
	"github.com/DjordjeVuckovic/strsplit/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type DemoConfig struct {
	LogLevel slog.Level
	Cases    []demo.Case
}

func (as *AppConfig) Load() (*DemoConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/strsplit/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	level, err := env.LogLevel()
	if err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(level)

	cases := demo.DefaultCases()
	if path := os.Getenv("DEMO_CASES_PATH"); path != "" {
		cases, err = demo.LoadCasesFromFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Loaded demo cases", "path", path, "count", len(cases))
	}

	return &DemoConfig{
		LogLevel: level,
		Cases:    cases,
	}, nil
}
