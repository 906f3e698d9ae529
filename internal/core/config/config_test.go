package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("STORE_API_URL")
	os.Unsetenv("STORE_API_TIMEOUT_MS")
	os.Unsetenv("CATALOG_CACHE_TTL")
	os.Unsetenv("ORDER_CONFIRM_DELAY_MS")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "https://minatoz997-chirostore.hf.space", cfg.Store.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout())
	assert.Empty(t, cfg.Cache.RedisURL)
	assert.Equal(t, 60*time.Second, cfg.Cache.CatalogTTL())
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.OrderConfirmDelay())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("STORE_API_URL", "https://store.example.com")
	os.Setenv("STORE_API_TIMEOUT_MS", "2500")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("ORDER_CONFIRM_DELAY_MS", "10")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("STORE_API_URL")
		os.Unsetenv("STORE_API_TIMEOUT_MS")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("ORDER_CONFIRM_DELAY_MS")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://store.example.com", cfg.Store.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Store.Timeout())
	assert.Equal(t, "redis://localhost:6379", cfg.Cache.RedisURL)
	assert.Equal(t, 10*time.Millisecond, cfg.UI.OrderConfirmDelay())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
STORE_API_URL=https://staging.example.com
CATALOG_CACHE_TTL=120
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.example.com", cfg.Store.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Cache.CatalogTTL())
}
