// Package config loads runtime defaults from the environment, with an
// optional .env file for local development. Command-line flags override
// anything loaded here.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	StoreKind     string // Persistence backend: memory or sqlite
	DBPath        string // Path to the sqlite database file
	ResultsPath   string // Path to the benchmark results CSV
	LogLevel      string // Log level: debug, info, warn, error
	LogFormat     string // Log format: text or json
	MaxExpansions int    // Expansion cap for a single search, 0 means unlimited
}

// Load reads the .env file if one is present and returns the configuration
// with defaults applied. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		StoreKind:     getEnvWithDefault("DRILLBOT_STORE", "memory"),
		DBPath:        getEnvWithDefault("DRILLBOT_DB_PATH", "drillbot.db"),
		ResultsPath:   getEnvWithDefault("DRILLBOT_RESULTS", "results.csv"),
		LogLevel:      getEnvWithDefault("DRILLBOT_LOG_LEVEL", "info"),
		LogFormat:     getEnvWithDefault("DRILLBOT_LOG_FORMAT", "text"),
		MaxExpansions: getEnvAsIntWithDefault("DRILLBOT_MAX_EXPANSIONS", 0),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling
// back to the default when unset or unparsable.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
