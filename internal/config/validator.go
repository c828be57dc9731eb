package config

import (
	"fmt"
	"strings"

	"github.com/osse101/SchalePlanner_Go/internal/logger"
)

// Validate checks values that parse correctly but cannot work
func (c *Config) Validate() error {
	var problems []string

	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}

	switch strings.ToLower(c.LogFormat) {
	case logger.LogFormatJSON, logger.LogFormatText:
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}

	if c.DBMaxConns < 1 {
		problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.ProfileCacheSize < 1 {
		problems = append(problems, fmt.Sprintf("PROFILE_CACHE_SIZE must be positive, got %d", c.ProfileCacheSize))
	}
	if c.ProfileCacheTTL <= 0 {
		problems = append(problems, fmt.Sprintf("PROFILE_CACHE_TTL must be positive, got %s", c.ProfileCacheTTL))
	}

	if c.DataDir == "" && requiresGameData(c.Environment) {
		problems = append(problems, fmt.Sprintf("DATA_DIR must point at exported game tables in %s; the embedded tables are fixtures", c.Environment))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func requiresGameData(environment string) bool {
	return environment == logger.EnvironmentProduction || environment == logger.EnvironmentStaging
}

// Warnings returns non-critical issues, like example credentials outside dev
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.Environment == logger.EnvironmentProduction && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value in production")
	}
	if c.Environment == logger.EnvironmentProduction && c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set in production - profile routes are unauthenticated")
	}

	return warnings
}
