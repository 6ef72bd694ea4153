package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/nfrund/hidaya/internal/app"
	"github.com/nfrund/hidaya/internal/config"
	"github.com/nfrund/hidaya/internal/logging"
	"github.com/nfrund/hidaya/internal/server"
	"github.com/samber/do/v2"
)

func main() {
	logging.New() // Initialize the structured logger

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	injector := app.NewInjector(cfg)

	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}
	tracing := do.MustInvoke[*app.Tracing](injector)

	runErr := s.Start(context.Background())

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	tracing.Flush(flushCtx)
	cancel()

	if runErr != nil {
		slog.Error("Server stopped with error", "error", runErr)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
