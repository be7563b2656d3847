package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/demoblaze/storefront-e2e/internal/browser"
	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/scenarios"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// ErrScenariosFailed is returned when at least one scenario fails
var ErrScenariosFailed = errors.New("scenarios failed")

// RunDependencies holds everything a scenario run needs
type RunDependencies struct {
	BrowserConfig config.BrowserConfig
	SuiteConfig   config.SuiteConfig
	// Local serves an in-memory storefront replica on a free port and
	// points the suite at it instead of SuiteConfig.BaseURL.
	Local  bool
	Logger logrus.FieldLogger
	Out    io.Writer
}

// RunScenarios launches the browser, runs the selected scenarios and writes
// the report to deps.Out
func RunScenarios(ctx context.Context, deps RunDependencies) error {
	selected, err := scenarios.Select(scenarios.Default(), deps.SuiteConfig.Scenarios)
	if err != nil {
		return err
	}

	baseURL := deps.SuiteConfig.BaseURL
	if deps.Local {
		url, stop, err := StartLocalStorefront(deps.Logger)
		if err != nil {
			return err
		}
		defer stop()
		baseURL = url
	}

	session, err := browser.Launch(deps.BrowserConfig, deps.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			deps.Logger.WithError(err).Warn("Failed to close browser")
		}
	}()

	suite := &scenarios.Suite{
		Scenarios:     selected,
		Pages:         session,
		BaseURL:       baseURL,
		ScreenshotDir: deps.SuiteConfig.ScreenshotDir,
		Expect:        newAssertions(deps.BrowserConfig),
		Logger:        deps.Logger,
	}
	report := suite.Run(ctx)
	if err := report.Write(deps.Out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d: %w", len(failed), len(report.Results), ErrScenariosFailed)
	}
	return nil
}

// StartLocalStorefront serves an in-memory replica on a loopback port and
// returns its base URL and a stop function
func StartLocalStorefront(logger logrus.FieldLogger) (string, func(), error) {
	storefront := NewMemoryStorefront()
	deps, err := storefront.ServerDependencies(config.ServerConfig{Port: "0"}, logger)
	if err != nil {
		return "", nil, err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create listener: %w", err)
	}
	server := &http.Server{Handler: NewRouter(deps)}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Local storefront error")
		}
	}()

	url := "http://" + listener.Addr().String()
	logger.WithField("url", url).Info("Local storefront started")
	return url, func() { server.Close() }, nil
}

func newAssertions(cfg config.BrowserConfig) playwright.PlaywrightAssertions {
	if cfg.Timeout > 0 {
		return playwright.NewPlaywrightAssertions(float64(cfg.Timeout.Milliseconds()))
	}
	return playwright.NewPlaywrightAssertions()
}
