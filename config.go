package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// setupLogging configures the default slog handler. Warnings and above by
// default, everything with -verbose.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadAPIKey resolves the Firecrawl credential with fallback priority:
// 1. Explicit override (the -api-key flag)
// 2. FIRECRAWL_API_KEY from the environment, with .env loaded when present
// Returns "" when no credential is available; the scrape client reports that
// as a credential error on use.
func loadAPIKey(override string) string {
	if override != "" {
		return override
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	return os.Getenv("FIRECRAWL_API_KEY")
}
