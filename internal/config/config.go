package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by PROPNET_ENV (or .env by default).
// Variables already set in the environment take precedence.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("PROPNET_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Load(envFile)

	return nil
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "warn" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "warn"
	}
	return level
}

// MaxSteps returns the bound on propagator firings per run.
// Defaults to 0 (unbounded) if not set or invalid.
func MaxSteps() int {
	n, err := strconv.Atoi(os.Getenv("PROPNET_MAX_STEPS"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
