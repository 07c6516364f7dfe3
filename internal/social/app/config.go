package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	TokenSecret string // Required: shared secret for verifying HS256 bearer tokens

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./social.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	ActivityWindow  time.Duration // Optional: window for the "recently active" flag (default: 24h)
	NewUserWindow   time.Duration // Optional: window for the "new user" flag (default: 168h)
	SuggestionCount int           // Optional: default suggestion page size (default: 5)
}

func LoadConfig() Config {
	cfg := Config{
		TokenSecret: os.Getenv("SOCIAL_TOKEN_SECRET"),
		DatabaseFile: getEnvOrDefault(
			"SOCIAL_DATABASE_FILE",
			"social.db",
		), // Default to ./social.db change this later
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		ActivityWindow:      getEnvDurationOrDefault("SOCIAL_ACTIVITY_WINDOW", 24*time.Hour),
		NewUserWindow:       getEnvDurationOrDefault("SOCIAL_NEW_USER_WINDOW", 7*24*time.Hour),
		SuggestionCount:     getEnvIntOrDefault("SOCIAL_SUGGESTION_COUNT", 5),
	}

	return cfg
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
