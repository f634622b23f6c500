package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importduty/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: "test"},
		Log:    config.LogConfig{Level: "error"},
	}
}

func TestRunReturnsRateFileErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Tax.RatesFile = filepath.Join(t.TempDir(), "missing.yaml")

	err := run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate table load failed")
}

func TestRunReturnsInvalidRateTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vat: 1.5\n"), 0o600))
	cfg := testConfig()
	cfg.Tax.RatesFile = path

	assert.ErrorContains(t, run(cfg), "invalid rate table")
}

func TestRunReturnsDatabaseErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		Enabled:  true,
		Host:     "127.0.0.1",
		Port:     "1",
		User:     "postgres",
		Password: "postgres",
		Name:     "postgres",
		SSLMode:  "disable",
	}

	assert.ErrorContains(t, run(cfg), "database connection failed")
}
