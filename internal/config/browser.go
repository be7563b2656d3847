package config

import (
	"fmt"
	"strconv"
	"time"
)

// Browser engines supported by Playwright
const (
	EngineChromium = "chromium"
	EngineFirefox  = "firefox"
	EngineWebKit   = "webkit"
)

// BrowserConfig controls how the Playwright browser is launched
type BrowserConfig struct {
	Engine         string
	Headless       bool
	SlowMo         time.Duration
	Timeout        time.Duration // zero keeps Playwright's default
	ViewportWidth  int
	ViewportHeight int
}

// LoadBrowserConfig loads browser settings from environment variables
func LoadBrowserConfig(getenv func(string) string) (BrowserConfig, error) {
	config := BrowserConfig{
		Engine:         EngineChromium,
		Headless:       true,
		ViewportWidth:  1280,
		ViewportHeight: 720,
	}

	if v := getenv("BROWSER"); v != "" {
		config.Engine = v
	}
	if v := getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return config, fmt.Errorf("HEADLESS must be a boolean: %w", err)
		}
		config.Headless = headless
	}
	if v := getenv("SLOW_MO"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("SLOW_MO must be a duration: %w", err)
		}
		config.SlowMo = d
	}
	if v := getenv("PW_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("PW_TIMEOUT must be a duration: %w", err)
		}
		config.Timeout = d
	}

	return config, config.Validate()
}

// Validate checks the engine name and numeric bounds
func (c BrowserConfig) Validate() error {
	switch c.Engine {
	case EngineChromium, EngineFirefox, EngineWebKit:
	default:
		return fmt.Errorf("unsupported browser %q", c.Engine)
	}
	if c.SlowMo < 0 {
		return fmt.Errorf("slow-mo cannot be negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	return nil
}
