package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the shop the suite runs against unless BASE_URL is set
const DefaultBaseURL = "https://demowebshop.tricentis.com"

// envPrefix marks keys that take precedence over their bare form, e.g. SUITE_BASE_URL over BASE_URL
const envPrefix = "SUITE_"

// Browsers supported by the page layer
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Timeouts holds the browser wait budgets
type Timeouts struct {
	Default  time.Duration
	Request  time.Duration
	Response time.Duration
}

// Viewport is the browser window size in pixels
type Viewport struct {
	Width  int
	Height int
}

// SuiteConfig holds configuration for the browser suite and data generation
type SuiteConfig struct {
	BaseURL      string
	Timeouts     Timeouts
	Viewport     Viewport
	Browser      string
	Headless     bool
	CI           bool
	Video        bool
	Screenshots  bool
	ArtifactsDir string
	UserEmail    string
	UserPassword string
	// DataSeed is nil when generated data should not be reproducible
	DataSeed *int64
	LogLevel string
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	lookup := func(key, fallback string) string {
		if v := getenv(envPrefix + key); v != "" {
			return v
		}
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	ci := lookup("CI", "false") == "true"
	config := &SuiteConfig{
		BaseURL:      strings.TrimRight(lookup("BASE_URL", DefaultBaseURL), "/"),
		CI:           ci,
		Headless:     ci || lookup("HEADLESS", "false") == "true",
		Video:        lookup("VIDEO", "true") != "false",
		Screenshots:  lookup("SCREENSHOTS", "true") != "false",
		ArtifactsDir: lookup("ARTIFACTS_DIR", "artifacts"),
		UserEmail:    lookup("TEST_USER_EMAIL", "test@example.com"),
		UserPassword: lookup("TEST_USER_PASSWORD", "Test123!"),
		LogLevel:     lookup("LOG_LEVEL", "info"),
	}

	var err error
	if config.Browser, err = normalizeBrowser(lookup("BROWSER", BrowserChromium)); err != nil {
		return nil, err
	}

	if config.Timeouts.Default, err = millis(lookup, "DEFAULT_COMMAND_TIMEOUT"); err != nil {
		return nil, err
	}
	if config.Timeouts.Request, err = millis(lookup, "REQUEST_TIMEOUT"); err != nil {
		return nil, err
	}
	if config.Timeouts.Response, err = millis(lookup, "RESPONSE_TIMEOUT"); err != nil {
		return nil, err
	}

	if config.Viewport.Width, err = positiveInt(lookup, "VIEWPORT_WIDTH", "1280"); err != nil {
		return nil, err
	}
	if config.Viewport.Height, err = positiveInt(lookup, "VIEWPORT_HEIGHT", "720"); err != nil {
		return nil, err
	}

	if raw := lookup("DATA_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("DATA_SEED must be an integer: %w", err)
		}
		config.DataSeed = &seed
	}

	return config, nil
}

func normalizeBrowser(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chrome", "chromium", "electron", "edge":
		return BrowserChromium, nil
	case "firefox":
		return BrowserFirefox, nil
	case "webkit", "safari":
		return BrowserWebKit, nil
	}
	return "", fmt.Errorf("BROWSER %q is not supported", name)
}

func millis(lookup func(string, string) string, key string) (time.Duration, error) {
	ms, err := positiveInt(lookup, key, "10000")
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func positiveInt(lookup func(string, string) string, key, fallback string) (int, error) {
	n, err := strconv.Atoi(lookup(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return n, nil
}
