package config

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public demo storefront the scenarios target
const DefaultBaseURL = "https://demoblaze.com"

// SuiteConfig holds settings for a scenario run
type SuiteConfig struct {
	BaseURL       string
	ScreenshotDir string
	Scenarios     []string
}

// LoadSuiteConfig loads suite settings from environment variables
func LoadSuiteConfig(getenv func(string) string) (SuiteConfig, error) {
	config := SuiteConfig{
		BaseURL:       getenv("BASE_URL"),
		ScreenshotDir: getenv("SCREENSHOT_DIR"),
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if v := getenv("SCENARIOS"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				config.Scenarios = append(config.Scenarios, name)
			}
		}
	}

	return config, config.Validate()
}

// Validate checks that BaseURL is an absolute http(s) URL
func (c SuiteConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL must include a host, got %q", c.BaseURL)
	}
	return nil
}
