package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"CARDGAP_DB", "CARDGAP_CACHE", "CARDGAP_OVERRIDES",
		"CARDGAP_EBAY_BASE_URL", "CARDGAP_SPORTSDB_BASE_URL",
		"CARDGAP_SPORTSDB_KEY", "CARDGAP_SCHEDULE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DBPath != "cardgap.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CachePath != "cache/sport.json" {
		t.Errorf("CachePath = %q", cfg.CachePath)
	}
	if cfg.Schedule != "@every 6h" {
		t.Errorf("Schedule = %q", cfg.Schedule)
	}
}

func TestLoadEnvWins(t *testing.T) {
	t.Setenv("CARDGAP_DB", "/tmp/other.db")
	t.Setenv("CARDGAP_EBAY_BASE_URL", "http://localhost:9999")

	cfg := Load()
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.EbayBaseURL != "http://localhost:9999" {
		t.Errorf("EbayBaseURL = %q", cfg.EbayBaseURL)
	}
}
