package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
)

const envPrefix = "ADVENTURE_"

// Storage backends.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	DataFile    string
	Storage     string
	RedisURL    string
	SQLitePath  string
	SaveTTL     time.Duration
	Seed        uint64
	GameID      string

	// raw values kept for Validate
	rawTTL  string
	rawSeed string
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DataFile:    getEnv("DATA_FILE", "data/advent.dat"),
		Storage:     strings.ToLower(getEnv("STORAGE", StorageMemory)),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SQLitePath:  getEnv("SQLITE_PATH", "adventure.db"),
		GameID:      getEnv("GAME_ID", ""),
		rawTTL:      getEnv("SAVE_TTL", "168h"),
		rawSeed:     getEnv("SEED", "0"),
	}
	if d, err := time.ParseDuration(cfg.rawTTL); err == nil {
		cfg.SaveTTL = d
	}
	if s, err := strconv.ParseUint(cfg.rawSeed, 10, 64); err == nil {
		cfg.Seed = s
	}
	return cfg
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.RedisURL == "" {
			el.Add(fmt.Errorf("%sREDIS_URL is required for the redis backend", envPrefix))
		}
	default:
		el.Add(fmt.Errorf("unknown storage backend %q", c.Storage))
	}

	if c.DataFile == "" {
		el.Add(fmt.Errorf("%sDATA_FILE is required", envPrefix))
	}
	if c.Storage == StorageSQLite && c.SQLitePath == "" {
		el.Add(fmt.Errorf("%sSQLITE_PATH is required for the sqlite backend", envPrefix))
	}

	if c.rawTTL != "" {
		if d, err := time.ParseDuration(c.rawTTL); err != nil {
			el.Add(fmt.Errorf("parsing %sSAVE_TTL: %w", envPrefix, err))
		} else if d < 0 {
			el.Add(fmt.Errorf("%sSAVE_TTL must not be negative", envPrefix))
		}
	}
	if c.rawSeed != "" {
		if _, err := strconv.ParseUint(c.rawSeed, 10, 64); err != nil {
			el.Add(fmt.Errorf("parsing %sSEED: %w", envPrefix, err))
		}
	}

	return el.Err()
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}
