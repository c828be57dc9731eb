package main

import (
	"context"
	"fmt"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (config + data + db)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	dataCmd := &CheckDataCommand{}
	if err := dataCmd.Run(nil); err != nil {
		PrintError("Game data check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Game data OK")
	}

	cfg, pool, err := connect(context.Background())
	if err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		pool.Close()
		for _, w := range cfg.Warnings() {
			PrintWarning("%s", w)
		}
		PrintSuccess("Database OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
