// @title SchalePlanner API
// @version 1.0
// @description Account, student and relationship progression planners.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/SchalePlanner_Go/internal/config"
	"github.com/osse101/SchalePlanner_Go/internal/database"
	"github.com/osse101/SchalePlanner_Go/internal/database/postgres"
	"github.com/osse101/SchalePlanner_Go/internal/gamedata"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
	"github.com/osse101/SchalePlanner_Go/internal/profile"
	"github.com/osse101/SchalePlanner_Go/internal/relationship"
	"github.com/osse101/SchalePlanner_Go/internal/sensei"
	"github.com/osse101/SchalePlanner_Go/internal/server"
	"github.com/osse101/SchalePlanner_Go/internal/student"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	for _, w := range cfg.Warnings() {
		logger.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	tables, err := gamedata.Load(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := tables.Verify(); err != nil {
		logger.Warn("Game data has gaps", "error", err)
	}
	if tables.IsFixture() {
		logger.Warn("Serving embedded fixture game tables; set DATA_DIR to exported game data for real results")
	}
	logger.Info("Game data loaded", "source", tables.Source, "gifts", tables.Gifts.Len())

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	profiles := profile.NewService(postgres.NewProfileRepository(pool), profile.CacheConfig{
		Size: cfg.ProfileCacheSize,
		TTL:  cfg.ProfileCacheTTL,
	})

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, cfg.Version, server.Services{
		Sensei:       sensei.NewService(tables.AccountExp, tables.CafeAP, cfg.DoubleExpIntervalWeeks),
		Student:      student.NewService(tables.StudentExp),
		Relationship: relationship.NewService(tables.RelationshipExp),
		Gifts:        tables.Gifts,
		Profiles:     profiles,
		// No ModelClient ships, so Scan stays nil and uploads answer 503
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
