package env

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LogLevel reads LOG_LEVEL and falls back to info when it is unset.
func LogLevel() (slog.Level, error) {
	return ParseLogLevel(os.Getenv("LOG_LEVEL"))
}

func ParseLogLevel(v string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", v)
	}
}
