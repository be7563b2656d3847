package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML suite file. Unset fields leave the
// environment-derived values untouched.
type FileConfig struct {
	BaseURL        string    `yaml:"baseURL"`
	ScreenshotDir  string    `yaml:"screenshotDir"`
	Scenarios      []string  `yaml:"scenarios"`
	Browser        string    `yaml:"browser"`
	Headless       *bool     `yaml:"headless"`
	SlowMo         *Duration `yaml:"slowMo"`
	Timeout        *Duration `yaml:"timeout"`
	ViewportWidth  int       `yaml:"viewportWidth"`
	ViewportHeight int       `yaml:"viewportHeight"`
}

// Duration unmarshals Go duration strings such as "500ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

// DefaultConfigFiles are searched, in order, when no file is given explicitly
var DefaultConfigFiles = []string{
	"demoblaze.yaml",
	"demoblaze.yml",
	".demoblaze.yaml",
	".demoblaze.yml",
}

// LoadFile reads a YAML suite file
func LoadFile(filename string) (*FileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return &config, nil
}

// FindConfigFile returns the first default config file present in dir, or ""
func FindConfigFile(dir string) string {
	for _, name := range DefaultConfigFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Apply overlays the file's values onto the browser and suite settings and revalidates them
func (f *FileConfig) Apply(browser *BrowserConfig, suite *SuiteConfig) error {
	if f.BaseURL != "" {
		suite.BaseURL = f.BaseURL
	}
	if f.ScreenshotDir != "" {
		suite.ScreenshotDir = f.ScreenshotDir
	}
	if len(f.Scenarios) > 0 {
		suite.Scenarios = append([]string(nil), f.Scenarios...)
	}
	if f.Browser != "" {
		browser.Engine = f.Browser
	}
	if f.Headless != nil {
		browser.Headless = *f.Headless
	}
	if f.SlowMo != nil {
		browser.SlowMo = f.SlowMo.Duration
	}
	if f.Timeout != nil {
		browser.Timeout = f.Timeout.Duration
	}
	if f.ViewportWidth > 0 {
		browser.ViewportWidth = f.ViewportWidth
	}
	if f.ViewportHeight > 0 {
		browser.ViewportHeight = f.ViewportHeight
	}

	if err := browser.Validate(); err != nil {
		return err
	}
	return suite.Validate()
}
