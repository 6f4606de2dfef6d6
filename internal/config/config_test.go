package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_DRIVER", "DB_DSN", "DB_CONNECT_ATTEMPTS", "DB_CONNECT_DELAY",
		"SERVER_PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FILE", "METRICS_ENABLED",
		"SEED_ACCOUNT_NAME", "SEED_ACCOUNT_EMAIL", "SEED_ACCOUNT_PASSWORD",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "host=localhost dbname=contacts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.DBConnectAttempts)
	assert.Equal(t, 2*time.Second, cfg.DBConnectDelay)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_RequiresDSN(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "file:contacts.db")
	t.Setenv("DB_CONNECT_ATTEMPTS", "3")
	t.Setenv("DB_CONNECT_DELAY", "500ms")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("SEED_ACCOUNT_EMAIL", "admin@example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 3, cfg.DBConnectAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.DBConnectDelay)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "admin@example.com", cfg.SeedEmail)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"DB_DRIVER":           "mysql",
		"DB_CONNECT_ATTEMPTS": "many",
		"DB_CONNECT_DELAY":    "soon",
		"METRICS_ENABLED":     "maybe",
		"GIN_MODE":            "production",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_DSN", "dsn")
			t.Setenv(key, val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_StringMasksDSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverPostgres, DBDSN: "password=secret", ServerPort: "8080"}
	assert.NotContains(t, cfg.String(), "secret")
}
