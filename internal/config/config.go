package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	AutoMigrate   bool
	GinMode       string
	RedisAddr     string
	QuoteCacheTTL time.Duration
	USDToRWF      float64
	RateTableFile string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "parkbook"),
		DBPassword:    getEnv("DB_PASSWORD", "parkbook_secret"),
		DBName:        getEnv("DB_NAME", "parkbook"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:   getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:       getEnv("GIN_MODE", "debug"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		QuoteCacheTTL: getEnvDuration("QUOTE_CACHE_TTL", 15*time.Minute),
		USDToRWF:      getEnvFloat("USD_TO_RWF", 1303),
		RateTableFile: getEnv("RATE_TABLE_FILE", ""),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
