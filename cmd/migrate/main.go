// Command migrate creates the villa schema and inserts the reference data,
// then exits. It honours the same configuration as the API server.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"villa-service/cmd/api/app"
	"villa-service/cmd/api/infrastructure"
	"villa-service/internal/config"
)

func main() {
	seed := flag.Bool("seed", true, "insert the reference villas and villa numbers")
	flag.Parse()

	if err := run(*seed); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func run(seed bool) error {
	cfg, err := config.LoadConfig(app.ConfigPath())
	if err != nil {
		return err
	}
	// Prepare below does the work once, honouring -seed.
	cfg.DB.AutoMigrate = false
	cfg.DB.Seed = false
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := app.InitLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	ctx := context.Background()
	db, err := infrastructure.NewDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer func() { _ = infrastructure.CloseDatabase(db) }()

	if err := infrastructure.Prepare(ctx, db, true, seed, l); err != nil {
		return err
	}

	l.Info("migration complete", zap.String("driver", cfg.DB.Driver), zap.Bool("seeded", seed))
	return nil
}
