package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"task-management/config"
	"task-management/internal/task/repository"
	taskRepo "task-management/internal/task/repository/postgre"
	"task-management/pkg/log"
)

// Rewrites priorities stored on the old 1..4 scale (low, medium, high,
// urgent) onto 1/3/5. Only rows created before -before are touched. The
// mapping is not idempotent: run it once per database.
func main() {
	before := flag.String("before", "", "only migrate rows created before this date (YYYY-MM-DD), required")
	dryRun := flag.Bool("dry-run", false, "count affected rows without writing")
	flag.Usage = func() {
		fmt.Println("Usage: go run scripts/migrate-priority/main.go -before 2024-06-01 [-dry-run] <path/to/config.yaml>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || *before == "" {
		flag.Usage()
		os.Exit(1)
	}
	cutoff, err := time.Parse(time.DateOnly, *before)
	if err != nil {
		fmt.Printf("Invalid -before date %q: %v\n", *before, err)
		os.Exit(1)
	}

	// Load config
	os.Setenv("CONFIG_PATH", flag.Arg(0))
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Voice.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Voice.Timezone, err)
	}
	repo := taskRepo.New(db, logger, loc)

	logger.Infof(ctx, "Migrating priorities of tasks created before %s (dry run: %v)...", *before, *dryRun)

	changed, err := repo.MigrateLegacyPriorities(ctx, repository.MigrateLegacyOptions{
		CreatedBefore: time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, loc),
		DryRun:        *dryRun,
	})
	if err != nil {
		logger.Fatalf(ctx, "Migration failed: %v", err)
	}

	if *dryRun {
		logger.Infof(ctx, "Dry run complete: %d tasks would change.", changed)
		return
	}
	logger.Infof(ctx, "Migration complete: %d tasks updated.", changed)
}
