package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func InitLogger() {
	// JSON output for log aggregation in production.
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

func GetLogger() *slog.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}
