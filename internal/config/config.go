package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver          string
	DBDSN             string
	DBConnectAttempts int
	DBConnectDelay    time.Duration

	ServerPort string
	GinMode    string

	LogLevel string
	LogFile  string

	MetricsEnabled bool

	// источники браузерной формы; "*" значит любой
	CORSOrigins []string

	// необязательный аккаунт, создаётся при старте если его ещё нет
	SeedName     string
	SeedEmail    string
	SeedPassword string
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBDSN:        os.Getenv("DB_DSN"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "release"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
		SeedName:     os.Getenv("SEED_ACCOUNT_NAME"),
		SeedEmail:    os.Getenv("SEED_ACCOUNT_EMAIL"),
		SeedPassword: os.Getenv("SEED_ACCOUNT_PASSWORD"),
		CORSOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}

	var err error
	if cfg.DBConnectAttempts, err = getEnvInt("DB_CONNECT_ATTEMPTS", 10); err != nil {
		return nil, err
	}
	if cfg.DBConnectAttempts < 1 {
		return nil, fmt.Errorf("DB_CONNECT_ATTEMPTS must be positive")
	}
	if cfg.DBConnectDelay, err = getEnvDuration("DB_CONNECT_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = getEnvBool("METRICS_ENABLED", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

// String скрывает DSN, в нём обычно пароль от БД.
func (c *Config) String() string {
	return fmt.Sprintf("Config{driver: %s, dsn: ***, port: %s, log: %s, metrics: %t}",
		c.DBDriver, c.ServerPort, c.LogLevel, c.MetricsEnabled)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return b, nil
}
