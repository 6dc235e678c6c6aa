package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	internalcli "github.com/shopqa/storefront/internal/cli"
	"github.com/shopqa/storefront/internal/config"
	"github.com/shopqa/storefront/internal/database"
	"github.com/shopqa/storefront/internal/datagen"
	"github.com/shopqa/storefront/internal/factories"
	"github.com/shopqa/storefront/internal/observability"
	"github.com/shopqa/storefront/internal/pages"
	"github.com/shopqa/storefront/internal/query"
	"github.com/shopqa/storefront/internal/repository"
	"github.com/shopqa/storefront/internal/scenarios"
	"github.com/shopqa/storefront/internal/services"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func seedFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:    "seed",
		Usage:   "seed the generator for reproducible output",
		EnvVars: []string{"SUITE_DATA_SEED", "DATA_SEED"},
	}
}

// generatorFor honors --seed when it was given
func generatorFor(c *cli.Context) *datagen.Generator {
	if c.IsSet("seed") {
		return datagen.NewSeeded(c.Int64("seed"))
	}
	return datagen.New()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ScenarioCommand prints one or more scenarios
func ScenarioCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenario",
		Usage: "Print a generated test scenario as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "scenario kind, or a comma separated list of kinds",
				Value: string(scenarios.HappyPath),
			},
			seedFlag(),
		},
		Action: func(c *cli.Context) error {
			factory := scenarios.New(factories.New(generatorFor(c)), observability.L().Named("scenarios"))

			kinds := strings.Split(c.String("kind"), ",")
			if len(kinds) == 1 {
				sc, err := factory.CreateStrict(kinds[0])
				if err != nil {
					return err
				}
				return writeJSON(c.App.Writer, sc)
			}
			list, err := factory.CreateDataDrivenStrict(kinds)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, list)
		},
	}
}

// UsersCommand prints valid users
func UsersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Print generated valid users as JSON",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Usage: "number of users", Value: 1},
			seedFlag(),
		},
		Action: func(c *cli.Context) error {
			users, err := factories.New(generatorFor(c)).MultipleUsers(c.Int("count"))
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, users)
		},
	}
}

// ExtractCommand summarizes a saved page
func ExtractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "Extract cart count, price and totals from saved HTML",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "HTML file to read (stdin when omitted)"},
		},
		Action: func(c *cli.Context) error {
			in := c.App.Reader
			if path := c.String("file"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open snapshot: %w", err)
				}
				defer f.Close()
				in = f
			}

			snapshot, err := query.ParseReader(in)
			if err != nil {
				return err
			}
			extractor := query.NewExtractor(observability.L().Named("query"))
			return writeJSON(c.App.Writer, extractor.Summarize(snapshot))
		},
	}
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the fixture API server",
		Action: func(c *cli.Context) error {
			logger := observability.L()
			serverConfig := config.LoadServerConfig(os.Getenv)

			var accountService services.AccountService
			if serverConfig.LedgerEnabled {
				service, closeLedger, err := openLedger(logger)
				if err != nil {
					return err
				}
				defer closeLedger()
				accountService = service
			} else {
				logger.Info("POSTGRES_HOSTNAME not set, serving without the account ledger")
			}

			deps := internalcli.NewServerDependencies(serverConfig, logger, accountService)
			return internalcli.RunServe(deps)
		},
	}
}

// AccountsCommand lists the ledger
func AccountsCommand() *cli.Command {
	return &cli.Command{
		Name:  "accounts",
		Usage: "List accounts recorded in the ledger, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "maximum number of accounts", Value: 20},
		},
		Action: func(c *cli.Context) error {
			service, closeLedger, err := openLedger(observability.L())
			if err != nil {
				return err
			}
			defer closeLedger()

			accounts, err := service.List(c.Int("limit"))
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, accounts)
		},
	}
}

// ProbeCommand opens a page in the configured browser and prints what the query layer finds
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Load a page of the shop and print its extracted summary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Usage: "path relative to BASE_URL", Value: "/cart"},
		},
		Action: func(c *cli.Context) error {
			suite, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return err
			}
			logger := observability.L()

			browser, err := pages.Launch(suite, logger)
			if err != nil {
				return err
			}
			defer browser.Close()

			session, err := browser.NewSession("probe")
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Base.Navigate(c.String("path")); err != nil {
				return err
			}
			snapshot, err := session.Base.Snapshot()
			if err != nil {
				return err
			}
			logger.Info("Probed page", zap.String("url", session.Base.URL()))

			extractor := query.NewExtractor(logger.Named("query"))
			return writeJSON(c.App.Writer, extractor.Summarize(snapshot))
		},
	}
}

// openLedger connects and migrates the account database
func openLedger(logger *zap.Logger) (services.AccountService, func(), error) {
	if err := database.Connect(os.Getenv); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Connected to database successfully")

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	service := services.NewAccountService(repository.NewAccountRepository(), logger.Named("ledger"))
	return service, func() { database.Close() }, nil
}
