package main

import (
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/browser"
	internalcli "github.com/demoblaze/storefront-e2e/internal/cli"
	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/markup"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// ServeCommand returns the serve command
func ServeCommand(logger logrus.FieldLogger, getenv func(string) string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the local storefront replica",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen port (default $PORT or 8080)"},
		},
		Action: func(c *cli.Context) error {
			storeConfig, err := config.LoadStoreConfig(getenv)
			if err != nil {
				return err
			}
			storefront, err := internalcli.NewStorefront(storeConfig, getenv, logger)
			if err != nil {
				return err
			}
			defer storefront.Close()

			serverConfig := config.LoadServerConfig(getenv)
			if c.IsSet("port") {
				serverConfig.Port = c.String("port")
			}

			deps, err := storefront.ServerDependencies(serverConfig, logger)
			if err != nil {
				return err
			}
			return internalcli.RunServe(deps)
		},
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "YAML suite file (default: first of demoblaze.yaml, .demoblaze.yaml in the working directory)"},
		&cli.StringFlag{Name: "base-url", Usage: "storefront to test (default $BASE_URL or " + config.DefaultBaseURL + ")"},
		&cli.StringSliceFlag{Name: "scenario", Usage: "run only the named scenario; repeatable"},
		&cli.StringFlag{Name: "browser", Usage: "chromium, firefox or webkit"},
		&cli.BoolFlag{Name: "headless", Usage: "run the browser without a window"},
		&cli.StringFlag{Name: "screenshots", Usage: "directory for failure screenshots"},
		&cli.BoolFlag{Name: "local", Usage: "run against an in-memory replica started on a free port"},
	}
}

// resolveRunConfig layers environment, config file and flags, later wins
func resolveRunConfig(c *cli.Context, getenv func(string) string) (config.BrowserConfig, config.SuiteConfig, error) {
	browserConfig, err := config.LoadBrowserConfig(getenv)
	if err != nil {
		return browserConfig, config.SuiteConfig{}, err
	}
	suiteConfig, err := config.LoadSuiteConfig(getenv)
	if err != nil {
		return browserConfig, suiteConfig, err
	}

	path := c.String("config")
	if path == "" {
		path = config.FindConfigFile(".")
	}
	if path != "" {
		file, err := config.LoadFile(path)
		if err != nil {
			return browserConfig, suiteConfig, err
		}
		if err := file.Apply(&browserConfig, &suiteConfig); err != nil {
			return browserConfig, suiteConfig, fmt.Errorf("%s: %w", path, err)
		}
	}

	if c.IsSet("base-url") {
		suiteConfig.BaseURL = c.String("base-url")
	}
	if c.IsSet("scenario") {
		suiteConfig.Scenarios = c.StringSlice("scenario")
	}
	if c.IsSet("browser") {
		browserConfig.Engine = c.String("browser")
	}
	if c.IsSet("headless") {
		browserConfig.Headless = c.Bool("headless")
	}
	if c.IsSet("screenshots") {
		suiteConfig.ScreenshotDir = c.String("screenshots")
	}

	if err := browserConfig.Validate(); err != nil {
		return browserConfig, suiteConfig, err
	}
	return browserConfig, suiteConfig, suiteConfig.Validate()
}

// RunCommand returns the run command
func RunCommand(logger logrus.FieldLogger, getenv func(string) string) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the UI scenarios and print a report",
		Flags: runFlags(),
		Action: func(c *cli.Context) error {
			browserConfig, suiteConfig, err := resolveRunConfig(c, getenv)
			if err != nil {
				return err
			}
			return internalcli.RunScenarios(c.Context, internalcli.RunDependencies{
				BrowserConfig: browserConfig,
				SuiteConfig:   suiteConfig,
				Local:         c.Bool("local"),
				Logger:        logger,
				Out:           c.App.Writer,
			})
		},
	}
}

// DoctorCommand returns the doctor command
func DoctorCommand(logger logrus.FieldLogger, getenv func(string) string) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check that the storefront markup still matches the page object selectors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "storefront to check (default $BASE_URL or " + config.DefaultBaseURL + ")"},
			&cli.BoolFlag{Name: "local", Usage: "check an in-memory replica started on a free port"},
		},
		Action: func(c *cli.Context) error {
			suiteConfig, err := config.LoadSuiteConfig(getenv)
			if err != nil {
				return err
			}
			baseURL := suiteConfig.BaseURL
			if c.IsSet("base-url") {
				baseURL = c.String("base-url")
			}
			if c.Bool("local") {
				url, stop, err := internalcli.StartLocalStorefront(logger)
				if err != nil {
					return err
				}
				defer stop()
				baseURL = url
			}

			checker := &markup.Checker{BaseURL: baseURL}
			findings, err := checker.Check(c.Context, markup.DefaultExpectations())
			if err != nil {
				return err
			}
			for _, f := range findings {
				status := "ok"
				if !f.OK() {
					status = "BROKEN"
				}
				fmt.Fprintf(c.App.Writer, "%-7s %-12s %-36s %d match(es)\n", status, f.Path, f.Selector, f.Matches)
			}
			if broken := markup.Broken(findings); len(broken) > 0 {
				return fmt.Errorf("%d selector(s) do not match exactly one element", len(broken))
			}
			return nil
		},
	}
}

// InstallCommand returns the install command
func InstallCommand(logger logrus.FieldLogger) *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the Playwright driver and browsers",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "browser", Value: cli.NewStringSlice(config.EngineChromium), Usage: "browser to install; repeatable"},
		},
		Action: func(c *cli.Context) error {
			browsers := c.StringSlice("browser")
			logger.WithField("browsers", browsers).Info("Installing Playwright")
			return browser.Install(browsers)
		},
	}
}
