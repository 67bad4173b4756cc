package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string // Optional: issuer claim for session tokens (default: pathfinder)
	SessionSecret string // Required: HS256 signing secret for session tokens

	GeminiAPIKey  string // Required: API key for the generation endpoint
	GeminiModel   string // Optional: model name (default: gemini-1.5-flash)
	GeminiBaseURL string // Optional: override the generation endpoint root

	UpstreamTimeout     time.Duration // Optional: per-call generation timeout (default: 30s)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./pathfinder.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("PATHFINDER_ISSUER", "pathfinder"),
		SessionSecret:       os.Getenv("PATHFINDER_SESSION_SECRET"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:       os.Getenv("GEMINI_BASE_URL"), // Optional: empty keeps the library default
		UpstreamTimeout:     getEnvDurationOrDefault("GEMINI_TIMEOUT", 30*time.Second),
		DatabaseFile:        getEnvOrDefault("PATHFINDER_DATABASE_FILE", "pathfinder.db"),
		PepperFile:          getEnvOrDefault("PATHFINDER_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are taken as seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
