// Package config provides process-level configuration loading for the
// roster engine. Domain input (rule weights, targets, event units) is
// per-solve and travels through rostermodel.SolveInput instead — it is
// never sourced from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds process-level settings for the engine and its CLI wrapper.
type Config struct {
	LogLevel       string
	LogPretty      bool
	SolveTimeLimit time.Duration
	DefaultSeed    int64
}

// Load reads configuration from environment variables, falling back to
// defaults matching spec.md §4.4's solver contract (60s time budget).
func Load() *Config {
	return &Config{
		LogLevel:       getEnv("ROSTER_LOG_LEVEL", "info"),
		LogPretty:      getBool("ROSTER_LOG_PRETTY", false),
		SolveTimeLimit: parseDuration(getEnv("ROSTER_SOLVE_TIME_LIMIT", "60s")),
		DefaultSeed:    getInt64("ROSTER_DEFAULT_SEED", 42),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid bool override, using default")
		return defaultValue
	}
	return parsed
}

func getInt64(key string, defaultValue int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid int override, using default")
		return defaultValue
	}
	return parsed
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Str("value", s).Msg("invalid duration, using default 60s")
		return 60 * time.Second
	}
	return d
}
