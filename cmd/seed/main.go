// Command seed loads development fixtures into the relational store. It
// refuses to run outside dev and test environments; production data comes
// from the services, never from this tool.
package main

import (
	"context"
	_ "embed"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/observability"
	"github.com/quillhq/datastore/postgres"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

func main() {
	file := flag.String("file", "", "fixture file; the built-in fixtures when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(observability.SetupLogger(cfg))

	if !cfg.IsDev() && !cfg.IsTest() {
		slog.Error("seeding refused outside dev/test", slog.String("app_env", cfg.AppEnv))
		os.Exit(1)
	}

	raw := defaultFixtures
	if *file != "" {
		raw, err = os.ReadFile(*file)
		if err != nil {
			slog.Error("fixture read failed", slog.String("file", *file), slog.Any("error", err))
			os.Exit(1)
		}
	}
	var fx fixtureFile
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		slog.Error("fixture parse failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := postgres.Open(ctx, cfg)
	if err != nil {
		slog.Error("store connect failed", slog.Any("error", err))
		os.Exit(1)
	}

	st, err := seed(ctx, client.DB(), fx)
	closeErr := client.Close()
	if err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
	if closeErr != nil {
		slog.Error("store close failed", slog.Any("error", closeErr))
	}
	slog.Info("fixtures loaded",
		slog.Int("users", st.users),
		slog.Int("categories", st.categories),
		slog.Int("tags", st.tags),
		slog.Int("posts", st.posts),
	)
}
