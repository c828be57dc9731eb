package main

import (
	"context"
	"log"

	"github.com/osse101/SchalePlanner_Go/internal/config"
	"github.com/osse101/SchalePlanner_Go/internal/database"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
)

// setup creates the database when missing and applies the migrations.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()

	created, err := database.EnsureDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to ensure database %s: %v", cfg.DBName, err)
	}
	if created {
		logger.Info("Database created", "name", cfg.DBName)
	} else {
		logger.Info("Database already exists", "name", cfg.DBName)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Migration completed successfully")
}
