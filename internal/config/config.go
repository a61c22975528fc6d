package config

import (
	"os"
	"strconv"
)

// Config holds the core runtime configuration for the service.
// Values are primarily sourced from environment variables, with
// sensible defaults where appropriate. See .env.example.
type Config struct {
	DatabaseURL string

	ListenAddr string

	// SeedUsername is a user created on startup if it does not exist yet,
	// so a fresh deployment has at least one account to log sleep against.
	// Empty disables seeding.
	SeedUsername string

	// MaxReportDays is the maximum window (in days) a caller may request
	// for the averages report. Larger requested values are clamped to
	// this value.
	MaxReportDays int

	// StatsIntervalMinutes is how often the background stats worker
	// refreshes the table-size gauges.
	StatsIntervalMinutes int
}

// Load reads configuration from environment variables and applies
func Load() *Config {
	cfg := &Config{
		DatabaseURL:          os.Getenv("APP_DATABASE_URL"),
		ListenAddr:           getenv("APP_LISTEN_ADDR", ":8080"),
		SeedUsername:         getenv("APP_SEED_USERNAME", "demo"),
		MaxReportDays:        365,
		StatsIntervalMinutes: 60,
	}

	if v := os.Getenv("APP_MAX_REPORT_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.MaxReportDays = days
		}
	}

	if v := os.Getenv("APP_STATS_INTERVAL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			cfg.StatsIntervalMinutes = mins
		}
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
