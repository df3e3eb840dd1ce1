package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DATABASE_URL", "PORT", "APP_ENV", "ALLOWED_ORIGINS", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "MAX_PARTICIPANTS"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg := Load()
		require.Empty(t, cfg.DatabaseURL)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, "production", cfg.Env)
		require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
		require.Equal(t, 24*time.Hour, cfg.SessionTTL)
		require.Equal(t, 10*time.Minute, cfg.SessionSweepInterval)
		require.Equal(t, 100, cfg.MaxParticipants)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/dutreat")
		t.Setenv("PORT", "9000")
		t.Setenv("APP_ENV", "dev")
		t.Setenv("ALLOWED_ORIGINS", "https://dutreat.example, http://localhost:5173 ,")
		t.Setenv("SESSION_TTL", "2h30m")
		t.Setenv("SESSION_SWEEP_INTERVAL", "1m")
		t.Setenv("MAX_PARTICIPANTS", "0")

		cfg := Load()
		require.Equal(t, "postgres://localhost/dutreat", cfg.DatabaseURL)
		require.Equal(t, "9000", cfg.Port)
		require.Equal(t, "dev", cfg.Env)
		require.Equal(t, []string{"https://dutreat.example", "http://localhost:5173"}, cfg.AllowedOrigins)
		require.Equal(t, 150*time.Minute, cfg.SessionTTL)
		require.Equal(t, time.Minute, cfg.SessionSweepInterval)
		require.Equal(t, 0, cfg.MaxParticipants)
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "forever")
		t.Setenv("SESSION_SWEEP_INTERVAL", "-1m")
		t.Setenv("MAX_PARTICIPANTS", "lots")

		cfg := Load()
		require.Equal(t, 24*time.Hour, cfg.SessionTTL)
		require.Equal(t, 10*time.Minute, cfg.SessionSweepInterval)
		require.Equal(t, 100, cfg.MaxParticipants)
	})
}
