package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string
	Addr        string
	CacheURL    string
	MQURL       string
	JWTSecret   string

	RateLimit RateLimitConfig
}

// RateLimitConfig drives the redis token bucket. A zero Capacity
// disables the limiter entirely.
type RateLimitConfig struct {
	Capacity     int
	RefillTokens int
	IntervalMS   int
	TTLSeconds   int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		Addr:        os.Getenv("ADDR"),
		CacheURL:    os.Getenv("CACHE_URL"),
		MQURL:       os.Getenv("RABBIT_MQ_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RateLimit: RateLimitConfig{
			Capacity:     envInt("RATE_LIMIT_CAPACITY", 0),
			RefillTokens: envInt("RATE_LIMIT_REFILL_TOKENS", 1),
			IntervalMS:   envInt("RATE_LIMIT_INTERVAL_MS", 1000),
			TTLSeconds:   envInt("RATE_LIMIT_TTL_SECONDS", 600),
		},
	}, nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
