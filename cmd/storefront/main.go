package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopqa/storefront/internal/observability"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// newApp builds the command tree. Commands write their output to the app writer.
func newApp() *cli.App {
	return &cli.App{
		Name:    "storefront",
		Usage:   "Test data, scenarios and page probes for the demo web shop",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"SUITE_LOG_LEVEL", "LOG_LEVEL"},
				Value:   "info",
			},
		},
		Before: func(c *cli.Context) error {
			observability.Initialize(c.String("log-level"))
			return nil
		},
		After: func(c *cli.Context) error {
			observability.Sync()
			return nil
		},
		Commands: []*cli.Command{
			ScenarioCommand(),
			UsersCommand(),
			ExtractCommand(),
			ServeCommand(),
			AccountsCommand(),
			ProbeCommand(),
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
