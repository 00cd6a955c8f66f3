package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName  string
	AppEnv   string
	LogLevel slog.Level

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver          string
	DBConnection      string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Query paging
	QueryDefaultCount int64
	QueryMaxCount     int64

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:  envString("APP_NAME", "goaltracker"),
		AppEnv:   envString("APP_ENV", "development"),
		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),

		// Database
		DBDriver:          envString("DB_DRIVER", "sqlite"),
		DBConnection:      envString("DB_CONNECTION", "./data/goaltracker.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),
		DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25, 0),
		DBMaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5, 0),
		DBConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Query paging
		QueryDefaultCount: int64(envInt("QUERY_DEFAULT_COUNT", 50, 1)),
		QueryMaxCount:     int64(envInt("QUERY_MAX_COUNT", 500, 1)),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.QueryDefaultCount > cfg.QueryMaxCount {
		slog.Warn("config QUERY_DEFAULT_COUNT above QUERY_MAX_COUNT, clamping",
			"default", cfg.QueryDefaultCount, "max", cfg.QueryMaxCount)
		cfg.QueryDefaultCount = cfg.QueryMaxCount
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

// envInt falls back to def for values that do not parse or are below floor.
// Zero is a valid pool setting: no idle connections, or no open limit.
func envInt(key string, def, floor int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < floor {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "min", floor, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envLevel(key string, def slog.Level) slog.Level {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(v)))
	if err != nil {
		slog.Warn("config invalid log level, using default", "key", key, "value", v, "default", def)
		return def
	}
	return level
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
