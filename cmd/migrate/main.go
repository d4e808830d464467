// Command migrate brings both stores up to date: it applies pending SQL
// migrations to PostgreSQL and ensures the MongoDB index set. Safe to run
// on every deploy; an up-to-date schema is a no-op.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quillhq/datastore"
	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(observability.SetupLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := datastore.Open(ctx, cfg)
	if err != nil {
		slog.Error("store connect failed", slog.Any("error", err))
		os.Exit(1)
	}

	applied, err := stores.Migrate(ctx)
	closeErr := stores.Close(context.Background())
	if err != nil {
		slog.Error("migrate failed", slog.Any("error", err))
		os.Exit(1)
	}
	if closeErr != nil {
		slog.Error("store close failed", slog.Any("error", closeErr))
	}
	slog.Info("schema up to date", slog.Int("applied", applied))
}
