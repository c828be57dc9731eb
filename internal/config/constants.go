package config

// Server defaults
const (
	DefaultPort = 8080
	MinPort     = 1
	MaxPort     = 65535
)

// Planner defaults
const (
	// DefaultDoubleExpIntervalWeeks is how often a double-EXP event is assumed to run
	DefaultDoubleExpIntervalWeeks = 2
)

// Insecure example values that should never reach production
const (
	ExampleDBPassword = "change_this_secure_password"
)
