package scenarios

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// ErrUnknownScenario is returned by Select for a name not in the list
var ErrUnknownScenario = errors.New("unknown scenario")

// PageProvider hands out isolated pages and takes them back
type PageProvider interface {
	NewPage() (playwright.Page, error)
	ClosePage(page playwright.Page) error
}

// Result is the outcome of one scenario
type Result struct {
	Name       string
	Passed     bool
	Err        error
	Duration   time.Duration
	Screenshot string
}

// Suite runs scenarios one after another against BaseURL
type Suite struct {
	Scenarios     []Scenario
	Pages         PageProvider
	BaseURL       string
	ScreenshotDir string // empty disables failure screenshots
	Expect        playwright.PlaywrightAssertions
	Logger        logrus.FieldLogger
}

// Select returns the scenarios with the given names, in the order given.
// No names selects everything.
func Select(all []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Scenario, len(all))
	for _, sc := range all {
		byName[sc.Name] = sc
	}

	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		selected = append(selected, sc)
	}
	return selected, nil
}

// Run executes every scenario on a fresh page. A failing scenario does not
// stop the ones after it; a cancelled ctx does.
func (s *Suite) Run(ctx context.Context) Report {
	expect := s.Expect
	if expect == nil {
		expect = playwright.NewPlaywrightAssertions()
	}

	report := Report{BaseURL: s.BaseURL}
	for _, sc := range s.Scenarios {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Name: sc.Name, Err: fmt.Errorf("not run: %w", err)})
			continue
		}
		result := s.runOne(ctx, sc, expect)
		report.Results = append(report.Results, result)
	}
	return report
}

func (s *Suite) runOne(ctx context.Context, sc Scenario, expect playwright.PlaywrightAssertions) Result {
	logger := s.Logger.WithField("scenario", sc.Name)
	logger.Info("Running scenario")

	start := time.Now()
	result := Result{Name: sc.Name}

	page, err := s.Pages.NewPage()
	if err != nil {
		result.Err = fmt.Errorf("open page: %w", err)
		result.Duration = time.Since(start)
		logger.WithError(result.Err).Error("Scenario failed")
		return result
	}
	defer func() {
		if err := s.Pages.ClosePage(page); err != nil {
			logger.WithError(err).Warn("Failed to close page")
		}
	}()

	result.Err = sc.Run(ctx, Env{Page: page, BaseURL: s.BaseURL, Expect: expect})
	result.Duration = time.Since(start)
	result.Passed = result.Err == nil

	if result.Passed {
		logger.WithField("duration", result.Duration.String()).Info("Scenario passed")
		return result
	}

	logger.WithError(result.Err).Error("Scenario failed")
	if s.ScreenshotDir != "" {
		path, err := s.screenshot(page, sc.Name)
		if err != nil {
			logger.WithError(err).Warn("Failed to capture screenshot")
		} else {
			result.Screenshot = path
		}
	}
	return result
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func (s *Suite) screenshot(page playwright.Page, name string) (string, error) {
	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}
	path := filepath.Join(s.ScreenshotDir, unsafeFileChars.ReplaceAllString(name, "_")+".png")
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", err
	}
	return path, nil
}
