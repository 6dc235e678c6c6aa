//go:build e2e
// +build e2e

package e2e

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/shopqa/storefront/internal/config"
	"github.com/shopqa/storefront/internal/database"
	"github.com/shopqa/storefront/internal/datagen"
	"github.com/shopqa/storefront/internal/factories"
	"github.com/shopqa/storefront/internal/observability"
	"github.com/shopqa/storefront/internal/pages"
	"github.com/shopqa/storefront/internal/repository"
	"github.com/shopqa/storefront/internal/scenarios"
	"github.com/shopqa/storefront/internal/services"
	"go.uber.org/zap"
)

var (
	suite   *config.SuiteConfig
	browser *pages.Browser
	// ledger is nil unless POSTGRES_HOSTNAME is configured
	ledger services.AccountService
)

// TestMain launches the configured browser once for every test
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	_ = godotenv.Load("../.env")

	var err error
	suite, err = config.LoadSuiteConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid suite configuration: %v\n", err)
		return 1
	}

	logger := observability.Initialize(suite.LogLevel)
	defer observability.Sync()

	if os.Getenv("POSTGRES_HOSTNAME") != "" {
		if err := database.Connect(os.Getenv); err != nil {
			logger.Error("Account ledger unavailable", zap.Error(err))
			return 1
		}
		defer database.Close()
		if err := database.RunMigrations(); err != nil {
			logger.Error("Account ledger migration failed", zap.Error(err))
			return 1
		}
		ledger = services.NewAccountService(repository.NewAccountRepository(), logger.Named("ledger"))
	}

	browser, err = pages.Launch(suite, logger)
	if err != nil {
		logger.Error("Browser launch failed", zap.Error(err))
		return 1
	}
	defer browser.Close()

	return m.Run()
}

// newSession opens an isolated browser session that is closed, with a
// screenshot on failure, when the test ends
func newSession(t *testing.T) *pages.Session {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	session, err := browser.NewSession(name)
	if err != nil {
		t.Fatalf("Failed to open browser session: %v", err)
	}
	t.Cleanup(func() {
		if t.Failed() {
			browser.CaptureFailure(session, name)
		}
		session.Close()
	})
	return session
}

// newFactories returns entity and scenario factories. With DATA_SEED set each
// test gets its own seed derived from its name, so runs are reproducible while
// no two tests register the same email.
func newFactories(t *testing.T) (*factories.Factory, *scenarios.Factory) {
	t.Helper()
	gen := datagen.New()
	if suite.DataSeed != nil {
		gen = datagen.NewSeeded(datagen.DeriveSeed(*suite.DataSeed, t.Name()))
	}
	entities := factories.New(gen)
	return entities, scenarios.New(entities, observability.L().Named("scenarios"))
}
