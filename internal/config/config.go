package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	Backend struct {
		BaseURL string
		Timeout time.Duration
	}

	Cache struct {
		TTL         time.Duration
		Backend     string // memory, file or redis
		Dir         string
		RedisAddr   string
		RedisDB     int
		RedisExpiry time.Duration
	}

	Scheduler struct {
		PrefetchSpec     string
		DefaultLocations []string
	}

	Retry struct {
		MaxRetries int
		Delay      time.Duration
		Multiplier float64
	}

	CircuitBreaker struct {
		Timeout time.Duration
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))

	// Backend API configuration
	cfg.Backend.BaseURL = getEnv("BACKEND_BASE_URL", "http://localhost:5000")
	cfg.Backend.Timeout = parseDuration(getEnv("BACKEND_TIMEOUT", "10s"))

	// Cache configuration. The 1h TTL matches the freshness window the site
	// has always used for forecast data.
	cfg.Cache.TTL = parseDuration(getEnv("CACHE_TTL", "1h"))
	cfg.Cache.Backend = getEnv("CACHE_BACKEND", "memory")
	cfg.Cache.Dir = getEnv("CACHE_DIR", ".cache/forecast")
	cfg.Cache.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Cache.RedisDB = parseInt(getEnv("REDIS_DB", "0"))
	cfg.Cache.RedisExpiry = parseDuration(getEnv("REDIS_EXPIRY", "24h"))

	// Prefetch scheduler configuration
	cfg.Scheduler.PrefetchSpec = getEnv("PREFETCH_SPEC", "@every 30m")
	locations := getEnv("DEFAULT_LOCATIONS", "")
	if locations != "" {
		cfg.Scheduler.DefaultLocations = strings.Split(locations, ",")
	}

	// Retry configuration
	cfg.Retry.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"))
	cfg.Retry.Delay = parseDuration(getEnv("RETRY_DELAY", "1s"))
	cfg.Retry.Multiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))

	// Circuit breaker configuration
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
