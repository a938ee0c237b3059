package config

import (
	"os"
	"strings"
)

const (
	defaultSchema    = "barracks_report"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Config holds settings read from the environment. CLI flags override them.
type Config struct {
	Database struct {
		// URL is empty when no archive database is configured.
		URL    string
		Schema string
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.Database.URL = dbURLFromEnv()
	cfg.Database.Schema = getEnv("BARRACKS_REPORT_DB_SCHEMA", defaultSchema)
	cfg.Log.Level = getEnv("LOG_LEVEL", defaultLogLevel)
	cfg.Log.Format = getEnv("LOG_FORMAT", defaultLogFormat)
	return cfg
}

func dbURLFromEnv() string {
	if value := strings.TrimSpace(os.Getenv("BARRACKS_REPORT_DB_URL")); value != "" {
		return value
	}
	return strings.TrimSpace(os.Getenv("DATABASE_URL"))
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
