package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server
const HTTP_ADDRESS = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Forecast defaults
const FORECAST_SEED = 42
const FORECAST_START_OFFSET_MONTHS = 6

// City catalog resync; re-seeds Redis if it was flushed.
const CITY_CATALOG_SYNC_SCHEDULE_MINUTES = 60

// Rate limiting
const RATE_LIMIT_RPS = 20.0
const RATE_LIMIT_BURST = 40

// Config is the resolved runtime configuration.
type Config struct {
	Env                       string
	RedisAddress              string
	RedisPassword             string
	RedisDB                   int
	HTTPAddress               string
	ForecastSeed              int64
	ForecastStartOffsetMonths int
	RateLimitRPS              float64
	RateLimitBurst            int
}

// Load reads envFiles with godotenv (missing files are ignored) and then
// applies environment overrides on top of the package defaults.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			log.Printf("[Config] Skipping env file %s: %v", f, err)
		}
	}

	cfg := &Config{
		Env:           getString("APP_ENV", "prod"),
		RedisAddress:  getString("REDIS_DB_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword: getString("REDIS_DB_PASSWORD", REDIS_DB_PASSWORD),
		HTTPAddress:   getString("HTTP_ADDRESS", HTTP_ADDRESS),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", REDIS_DB); err != nil {
		return nil, err
	}
	if cfg.ForecastStartOffsetMonths, err = getInt("FORECAST_START_OFFSET_MONTHS", FORECAST_START_OFFSET_MONTHS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", RATE_LIMIT_BURST); err != nil {
		return nil, err
	}
	seed, err := getInt("FORECAST_SEED", FORECAST_SEED)
	if err != nil {
		return nil, err
	}
	cfg.ForecastSeed = int64(seed)

	cfg.RateLimitRPS = RATE_LIMIT_RPS
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
	}
	return cfg, nil
}

// UsesRedis reports whether the catalog should live in a real Redis.
func (c *Config) UsesRedis() bool {
	return c.Env == "prod"
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
