package main

import (
	"fmt"
	"os"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/logging"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	logger, err := logging.New(config.LoadLogConfig(os.Getenv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		logger.Debug(".env file not found, using environment variables")
	}

	app := newApp(logger, os.Getenv)
	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func newApp(logger logrus.FieldLogger, getenv func(string) string) *cli.App {
	return &cli.App{
		Name:    "demoblaze",
		Usage:   "UI checks for the demoblaze storefront, and a local replica to run them against",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(logger, getenv),
			RunCommand(logger, getenv),
			DoctorCommand(logger, getenv),
			InstallCommand(logger),
		},
	}
}
