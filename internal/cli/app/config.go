package app

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL        string        // Gateway base URL (default: http://localhost:8080)
	CredentialsDB string        // Path to the SQLite credential cache (default: ~/.muusmart/credentials.db)
	Profile       string        // Credential profile name (default: default)
	CheckInterval time.Duration // Session expiry re-check interval (default: 30s)
	Passphrase    string        // Optional: passphrase for the file credential store
	Env           string        // Environment (dev, staging, prod) (default: dev)
	LogLevel      string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat     string        // Log format (json, text) (default: text)
}

// LoadConfig reads configuration from a .env file (when present) and the
// environment. A CLI mostly runs with defaults, so nothing is required.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		APIURL:        getEnvOrDefault("MUU_API_URL", "http://localhost:8080"),
		CredentialsDB: getEnvOrDefault("MUU_CREDENTIALS_DB", defaultCredentialsPath()),
		Profile:       getEnvOrDefault("MUU_PROFILE", "default"),
		CheckInterval: getEnvDurationOrDefault("MUU_CHECK_INTERVAL", 30*time.Second),
		Passphrase:    os.Getenv("MUU_CREDENTIALS_PASSPHRASE"),
		Env:           getEnvOrDefault("ENV", "dev"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.db"
	}
	return filepath.Join(home, ".muusmart", "credentials.db")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

	// Bare integers are read as seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
