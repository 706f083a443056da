package app

import (
	"os"
	"strconv"
	"time"

	"github.com/openclave/accountd/pkg/jwtx"
)

type Config struct {
	Issuer         string // Optional: issuer claim for session tokens (default: accountd)
	BootstrapToken string // Optional: token required to perform bootstrap
	SessionSecret  string // Required in prod: HS256 secret for session tokens (min 32 bytes)

	SessionTTL           time.Duration // Optional: session lifetime (default: 24h)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./account.db)
	PepperFile           string        // Optional: path to pepper file for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Session cleanup interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("ACCOUNT_ISSUER", "accountd"),
		BootstrapToken:       os.Getenv("BOOTSTRAP_TOKEN"),
		SessionSecret:        os.Getenv("ACCOUNT_SESSION_SECRET"),
		SessionTTL:           getEnvDurationOrDefault("ACCOUNT_SESSION_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:         getEnvOrDefault("ACCOUNT_DATABASE_FILE", "account.db"),
		PepperFile:           getEnvOrDefault("ACCOUNT_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

	// Plain integers are taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
