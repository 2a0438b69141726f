package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes variables for the duration of the test, restoring any
// prior values afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "DB_POOL_SIZE", "JWT_TOKEN_DURATION", "COOKIE_SECURE", "PORT", "MIGRATIONS_PATH")
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/chatbox")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:pw@localhost:5432/chatbox", cfg.Database.DSN())
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
}

func TestLoadConfigDiscreteDatabaseVars(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "chatbox")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:pw@db.internal:5433/chatbox?sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfigMissingRequired(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "JWT_SECRET", "DB_USER", "DB_PASSWORD", "DB_NAME")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/chatbox")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TOKEN_DURATION", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/chatbox")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TOKEN_DURATION", "24h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestClampPoolSize(t *testing.T) {
	assert.Equal(t, 1, clampPoolSize(0))
	assert.Equal(t, 1, clampPoolSize(-5))
	assert.Equal(t, 10, clampPoolSize(10))
	assert.Equal(t, 100, clampPoolSize(500))
}
