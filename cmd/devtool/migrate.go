package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/SchalePlanner_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}

	ctx := context.Background()
	cfg, pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	case "down":
		if !hasFlag(args[1:], "-y") && !confirm(fmt.Sprintf("Roll back the last migration on %s?", cfg.DBName)) {
			PrintWarning("Aborted")
			return nil
		}
		PrintHeader("Rolling back one migration")
		if err := database.Rollback(ctx, pool); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}

	version, err := database.MigrationVersion(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Database %s is at migration version %d", cfg.DBName, version)
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// confirm asks on stdin and accepts only "yes".
func confirm(question string) bool {
	fmt.Printf("%s Type '%s' to continue: ", question, confirmYes)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(answer) == confirmYes
}
