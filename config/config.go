package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Contact ContactConfig
	Redis   RedisConfig
	App     AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type CatalogConfig struct {
	// Source is either an http(s) URL or a path to a local JSON file.
	Source       string
	FetchTimeout time.Duration
	PageSize     int
	// Watch enables fsnotify-driven reloads for file-backed sources.
	Watch         bool
	WatchDebounce time.Duration
	// RefreshSchedule is a cron expression for re-fetching URL-backed
	// sources. Empty disables scheduled refresh.
	RefreshSchedule string
}

type ContactConfig struct {
	UpstreamURL     string
	Timeout         time.Duration
	RatePerMinute   int
	Burst           int
	DuplicateWindow time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Catalog: CatalogConfig{
			Source:          getEnv("CATALOG_SOURCE", "data/projects.json"),
			FetchTimeout:    getEnvAsDuration("CATALOG_FETCH_TIMEOUT", 10*time.Second),
			PageSize:        getEnvAsInt("CATALOG_PAGE_SIZE", 6),
			Watch:           getEnvAsBool("CATALOG_WATCH", false),
			WatchDebounce:   getEnvAsDuration("CATALOG_WATCH_DEBOUNCE", 220*time.Millisecond),
			RefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", ""),
		},
		Contact: ContactConfig{
			UpstreamURL:     getEnv("CONTACT_UPSTREAM_URL", ""),
			Timeout:         getEnvAsDuration("CONTACT_TIMEOUT", 15*time.Second),
			RatePerMinute:   getEnvAsInt("CONTACT_RATE_PER_MINUTE", 5),
			Burst:           getEnvAsInt("CONTACT_BURST", 3),
			DuplicateWindow: getEnvAsDuration("CONTACT_DUPLICATE_WINDOW", 10*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Catalog.Source == "" {
		return fmt.Errorf("CATALOG_SOURCE is required")
	}

	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be at least 1")
	}

	if c.Contact.RatePerMinute < 1 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be at least 1")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
