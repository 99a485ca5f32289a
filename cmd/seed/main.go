// Copyright (c) 2026 Geodir Authors. All rights reserved.

// Command seed loads the flat Nepal local-level feed and builds the
// country → province → district → city hierarchy in PostgreSQL.
//
// The run is idempotent: the country row is keyed by ISO code and division
// rows are upserted, so re-running against a populated database updates in
// place instead of duplicating.
//
// Run: DATABASE_URL=... go run ./cmd/seed
// A .env file in the working directory is loaded when present.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/placewise/geodir/internal/geo/seed"
	pgstore "github.com/placewise/geodir/internal/platform/postgres"
)

// seedConfig is intentionally separate from the API config: the seeder
// needs no Redis, no server port, and must not fail on their absence.
type seedConfig struct {
	DatabaseURL  string `env:"DATABASE_URL,required"`
	SeedDataPath string `env:"SEED_DATA_PATH" envDefault:"./data/nepal.json"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "geodir-seed"))
	slog.SetDefault(log)

	// Optional local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[seedConfig]()
	must(log, err, "load configuration")

	rows, err := loadFeed(cfg.SeedDataPath)
	must(log, err, "load seed feed")
	log.Info("feed_loaded", slog.String("path", cfg.SeedDataPath), slog.Int("rows", len(rows)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetDescription("Seeding Nepal divisions"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	builder := seed.NewBuilder(seed.NewPostgresStore(pool), log)
	builder.OnRow(func() { _ = bar.Add(1) })

	stats, err := builder.Run(ctx, rows)
	must(log, err, "build hierarchy")
	_ = bar.Finish()

	log.Info("seed_complete",
		slog.Int("provinces", stats.Provinces),
		slog.Int("districts", stats.Districts),
		slog.Int("cities", stats.Cities),
		slog.Int("skipped", stats.Skipped),
	)
}

func loadFeed(path string) ([]seed.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []seed.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
