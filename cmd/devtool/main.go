package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry(
		&MigrateCommand{},
		&WaitForDBCommand{},
		&HealthCheckCommand{},
		&CheckDataCommand{},
		&DoctorCommand{},
	)

	if len(os.Args) < 2 {
		registry.PrintHelp(output)
		os.Exit(1)
	}
	if os.Args[1] == "help" || os.Args[1] == "-h" {
		registry.PrintHelp(output)
		return
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command %q", os.Args[1])
		registry.PrintHelp(output)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
