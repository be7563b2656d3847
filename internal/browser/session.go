// Package browser owns the Playwright driver process and the browser it launches.
package browser

import (
	"errors"
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Session is a running Playwright driver plus one launched browser. Every
// page it hands out lives in its own browser context, so cookies and
// storage never leak between scenarios.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	config  config.BrowserConfig
	logger  logrus.FieldLogger
}

// Install downloads the Playwright driver and the named browsers
func Install(browsers []string) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

// Launch starts Playwright and the browser engine named in cfg
func Launch(cfg config.BrowserConfig, logger logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := browserType(pw, cfg.Engine).Launch(launchOptions(cfg))
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Engine, err)
	}

	logger.WithFields(logrus.Fields{
		"browser":  cfg.Engine,
		"version":  browser.Version(),
		"headless": cfg.Headless,
	}).Info("Browser launched")

	return &Session{pw: pw, browser: browser, config: cfg, logger: logger}, nil
}

// NewPage opens a page in a fresh browser context
func (s *Session) NewPage() (playwright.Page, error) {
	ctx, err := s.browser.NewContext(contextOptions(s.config))
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	if s.config.Timeout > 0 {
		ctx.SetDefaultTimeout(float64(s.config.Timeout.Milliseconds()))
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// ClosePage closes page together with its browser context
func (s *Session) ClosePage(page playwright.Page) error {
	return page.Context().Close()
}

// Close shuts down the browser and the driver
func (s *Session) Close() error {
	return errors.Join(s.browser.Close(), s.pw.Stop())
}

func browserType(pw *playwright.Playwright, engine string) playwright.BrowserType {
	switch engine {
	case config.EngineFirefox:
		return pw.Firefox
	case config.EngineWebKit:
		return pw.WebKit
	default:
		return pw.Chromium
	}
}

func launchOptions(cfg config.BrowserConfig) playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}
	return opts
}

func contextOptions(cfg config.BrowserConfig) playwright.BrowserNewContextOptions {
	return playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  cfg.ViewportWidth,
			Height: cfg.ViewportHeight,
		},
	}
}
