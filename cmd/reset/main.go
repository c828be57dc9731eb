package main

import (
	"context"
	"log"

	"github.com/osse101/SchalePlanner_Go/internal/config"
	"github.com/osse101/SchalePlanner_Go/internal/database"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
)

// reset drops the planner database, recreates it and applies the migrations.
// Every saved profile is lost.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment == logger.EnvironmentProduction {
		log.Fatalf("Refusing to reset the %s database in production", cfg.DBName)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()

	if err := database.DropDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}
	if _, err := database.EnsureDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Database reset complete", "name", cfg.DBName)
}
