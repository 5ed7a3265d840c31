// Package config reads the module's logging settings from the environment.
// Nothing is read at import time; the logger calls Load on first use.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvFileKey names a dotenv file to load before reading settings. There is
// no implicit .env lookup in the working directory.
const EnvFileKey = "ENSURE_ENV_FILE"

type Config struct {
	Log LogConfig
}

type LogConfig struct {
	Mode              string // "release" selects the production encoder
	Level             string // Empty keeps the mode's default level
	DevelopmentStacks bool   // Attach stack traces to warnings in development mode
}

// Load returns settings from the environment. When EnvFileKey is set, that
// file's entries are loaded first; variables already set are not overridden.
func Load() (*Config, error) {
	if path := os.Getenv(EnvFileKey); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return &Config{
		Log: LogConfig{
			Mode:              getEnv("ENSURE_LOG_MODE", getEnv("GIN_MODE", "debug")),
			Level:             getEnv("ENSURE_LOG_LEVEL", ""),
			DevelopmentStacks: getEnvBool("ENSURE_LOG_DEVELOPMENT_STACKTRACES", false),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
