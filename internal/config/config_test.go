package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BARRACKS_REPORT_DB_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BARRACKS_REPORT_DB_SCHEMA", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()

	assert.Equal(t, "", cfg.Database.URL)
	assert.Equal(t, "barracks_report", cfg.Database.Schema)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadPrefersServiceDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://fallback")
	t.Setenv("BARRACKS_REPORT_DB_URL", "")
	assert.Equal(t, "postgres://fallback", Load().Database.URL)

	t.Setenv("BARRACKS_REPORT_DB_URL", " postgres://primary ")
	assert.Equal(t, "postgres://primary", Load().Database.URL)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("BARRACKS_REPORT_DB_SCHEMA", "unit_reports")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "unit_reports", cfg.Database.Schema)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}
