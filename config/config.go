package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application-level configuration
type Config struct {
	// Site
	TargetURL string

	// Browser
	Headless      bool
	ClickTimeout  time.Duration // visibility wait before a click
	PageTimeout   time.Duration // result rows and next-page link
	LookupTimeout time.Duration // plain element lookups (inputs, popup text)
	SettleDelay   time.Duration // pause after returning to the results list

	// Output
	CSVFilePath string
	LogFilePath string
	Verbose     bool

	// Database (optional, empty disables the PostgreSQL sink)
	DatabaseURL string
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		TargetURL:     getEnv("AUTORIA_URL", "https://auto.ria.com/"),
		Headless:      getEnvBool("HEADLESS", false),
		ClickTimeout:  getEnvDuration("CLICK_TIMEOUT", 20*time.Second),
		PageTimeout:   getEnvDuration("PAGE_TIMEOUT", 10*time.Second),
		LookupTimeout: getEnvDuration("LOOKUP_TIMEOUT", 10*time.Second),
		SettleDelay:   getEnvDuration("SETTLE_DELAY", 1*time.Second),
		CSVFilePath:   getEnv("CSV_FILE_PATH", "autoria.csv"),
		LogFilePath:   getEnv("LOG_FILE_PATH", "scraping.log"),
		Verbose:       getEnvBool("VERBOSE", false),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvDuration accepts Go durations ("20s") or a bare number of seconds
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if n, err := strconv.Atoi(val); err == nil {
		return time.Duration(n) * time.Second
	}
	return defaultVal
}
