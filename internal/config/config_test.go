package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadSuiteConfigDefaults(t *testing.T) {
	// GIVEN an empty environment
	getenv := envFrom(nil)

	// WHEN the suite config is loaded
	cfg, err := LoadSuiteConfig(getenv)

	// THEN the defaults apply
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, Timeouts{Default: 10 * time.Second, Request: 10 * time.Second, Response: 10 * time.Second}, cfg.Timeouts)
	assert.Equal(t, Viewport{Width: 1280, Height: 720}, cfg.Viewport)
	assert.Equal(t, BrowserChromium, cfg.Browser)
	assert.False(t, cfg.Headless)
	assert.False(t, cfg.CI)
	assert.True(t, cfg.Video)
	assert.True(t, cfg.Screenshots)
	assert.Equal(t, "test@example.com", cfg.UserEmail)
	assert.Equal(t, "Test123!", cfg.UserPassword)
	assert.Nil(t, cfg.DataSeed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadSuiteConfigOverrides(t *testing.T) {
	cfg, err := LoadSuiteConfig(envFrom(map[string]string{
		"BASE_URL":                "http://localhost:3000/",
		"SUITE_BASE_URL":          "http://shop.test/",
		"DEFAULT_COMMAND_TIMEOUT": "2500",
		"VIEWPORT_WIDTH":          "1920",
		"BROWSER":                 "Firefox",
		"HEADLESS":                "true",
		"VIDEO":                   "false",
		"DATA_SEED":               "-42",
		"SUITE_LOG_LEVEL":         "debug",
	}))

	require.NoError(t, err)
	assert.Equal(t, "http://shop.test", cfg.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeouts.Default)
	assert.Equal(t, 1920, cfg.Viewport.Width)
	assert.Equal(t, BrowserFirefox, cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.Video)
	require.NotNil(t, cfg.DataSeed)
	assert.Equal(t, int64(-42), *cfg.DataSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadSuiteConfigForcesHeadlessInCI(t *testing.T) {
	cfg, err := LoadSuiteConfig(envFrom(map[string]string{
		"CI":       "true",
		"HEADLESS": "false",
	}))

	require.NoError(t, err)
	assert.True(t, cfg.CI)
	assert.True(t, cfg.Headless)
}

func TestLoadSuiteConfigBrowserAliases(t *testing.T) {
	tests := map[string]string{
		"chrome":   BrowserChromium,
		"electron": BrowserChromium,
		"safari":   BrowserWebKit,
		"webkit":   BrowserWebKit,
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			cfg, err := LoadSuiteConfig(envFrom(map[string]string{"BROWSER": input}))

			require.NoError(t, err)
			assert.Equal(t, want, cfg.Browser)
		})
	}
}

func TestLoadSuiteConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"unknown browser", map[string]string{"BROWSER": "lynx"}, "BROWSER"},
		{"bad timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}, "REQUEST_TIMEOUT"},
		{"zero viewport", map[string]string{"VIEWPORT_HEIGHT": "0"}, "VIEWPORT_HEIGHT"},
		{"bad seed", map[string]string{"DATA_SEED": "abc"}, "DATA_SEED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSuiteConfig(envFrom(tt.env))

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPostgresConfig(t *testing.T) {
	env := map[string]string{
		"POSTGRES_USER":     "suite",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "ledger",
		"POSTGRES_HOSTNAME": "db",
	}

	cfg, err := LoadPostgresConfig(envFrom(env))

	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=suite password=secret dbname=ledger sslmode=disable", cfg.ConnectionString())

	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOSTNAME"} {
		t.Run("missing "+key, func(t *testing.T) {
			partial := make(map[string]string, len(env))
			for k, v := range env {
				partial[k] = v
			}
			delete(partial, key)

			_, err := LoadPostgresConfig(envFrom(partial))

			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	assert.Equal(t, ServerConfig{Port: "8080"}, LoadServerConfig(envFrom(nil)))
	assert.Equal(t, ServerConfig{Port: "9000", LedgerEnabled: true}, LoadServerConfig(envFrom(map[string]string{
		"PORT":              "9000",
		"POSTGRES_HOSTNAME": "db",
	})))
}
