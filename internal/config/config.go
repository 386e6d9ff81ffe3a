// Package config loads runtime settings from the environment, with .env
// support for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the CLI needs to wire the pipeline together.
type Config struct {
	DBPath        string
	CachePath     string
	OverridesPath string

	EbayBaseURL string

	SportsAPIBase string
	SportsAPIKey  string

	// Cron spec for watch mode.
	Schedule string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:        getenv("CARDGAP_DB", "cardgap.db"),
		CachePath:     getenv("CARDGAP_CACHE", "cache/sport.json"),
		OverridesPath: getenv("CARDGAP_OVERRIDES", "overrides.json"),
		EbayBaseURL:   os.Getenv("CARDGAP_EBAY_BASE_URL"),
		SportsAPIBase: os.Getenv("CARDGAP_SPORTSDB_BASE_URL"),
		SportsAPIKey:  os.Getenv("CARDGAP_SPORTSDB_KEY"),
		Schedule:      getenv("CARDGAP_SCHEDULE", "@every 6h"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
