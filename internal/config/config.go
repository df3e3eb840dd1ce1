package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// DatabaseURL is optional; without it the visitor counter lives in memory
	DatabaseURL    string
	Port           string
	Env            string
	AllowedOrigins []string

	// Idle sessions older than SessionTTL are evicted; 0 disables eviction
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	// MaxParticipants caps each session; 0 means no cap
	MaxParticipants int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "production"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		SessionTTL:           getDuration("SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: getDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		MaxParticipants:      getInt("MAX_PARTICIPANTS", 100),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDuration parses a duration such as "30m"; unset or malformed values fall
// back to the default
func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
