package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SchalePlanner_Go/internal/config"
	"github.com/osse101/SchalePlanner_Go/internal/database"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	ctx := context.Background()
	var err error
	for i := 0; i < waitMaxRetries; i++ {
		var pool *pgxpool.Pool
		if _, pool, err = connect(ctx); err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitMaxRetries, err)
}

// connect loads the app configuration and opens a small pool against it.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}
