package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	TokenSecret string // Required: HMAC secret for signing access tokens

	TokenTTL            time.Duration // Optional: access token lifetime (default: 30m)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./linkbio.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// ErrMissingTokenSecret means TOKEN_SECRET is unset. There is no safe
// default for a signing secret, so startup refuses instead of generating
// one that would invalidate every token on restart anyway.
var ErrMissingTokenSecret = errors.New("TOKEN_SECRET is required")

func LoadConfig() (Config, error) {
	cfg := Config{
		TokenSecret:         os.Getenv("TOKEN_SECRET"),
		TokenTTL:            getEnvDurationOrDefault("TOKEN_TTL", 30*time.Minute),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "linkbio.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.TokenSecret == "" {
		return Config{}, ErrMissingTokenSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
