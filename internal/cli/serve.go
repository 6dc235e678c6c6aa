package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopqa/storefront/internal/config"
	"github.com/shopqa/storefront/internal/handlers"
	"github.com/shopqa/storefront/internal/query"
	"github.com/shopqa/storefront/internal/services"
	"go.uber.org/zap"
)

// ServerDependencies holds all dependencies needed for the fixture API server
type ServerDependencies struct {
	ServerConfig    config.ServerConfig
	Logger          *zap.Logger
	ScenarioHandler http.Handler
	UsersHandler    http.Handler
	ExtractHandler  http.Handler
	// AccountsHandler is nil when the account ledger is not configured
	AccountsHandler http.Handler
}

// NewServerDependencies wires the fixture API handlers. accountService may be
// nil, in which case /api/accounts is not served.
func NewServerDependencies(cfg config.ServerConfig, logger *zap.Logger, accountService services.AccountService) ServerDependencies {
	if logger == nil {
		logger = zap.NewNop()
	}
	deps := ServerDependencies{
		ServerConfig:    cfg,
		Logger:          logger,
		ScenarioHandler: handlers.NewScenarioHandler(logger.Named("scenarios")),
		UsersHandler:    handlers.NewUsersHandler(),
		ExtractHandler:  handlers.NewExtractHandler(query.NewExtractor(logger.Named("query")), logger.Named("extract")),
	}
	if accountService != nil {
		deps.AccountsHandler = handlers.NewAccountsHandler(accountService, logger.Named("accounts"))
	}
	return deps
}

// RunServe starts the fixture API server and blocks until a shutdown signal
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.logger())
}

// NewRouter registers the fixture API routes
func NewRouter(deps ServerDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/scenarios", deps.ScenarioHandler)
	mux.Handle("/api/users", deps.UsersHandler)
	mux.Handle("/api/extract", deps.ExtractHandler)
	if deps.AccountsHandler != nil {
		mux.Handle("/api/accounts", deps.AccountsHandler)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	logger := deps.logger()

	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", zap.Error(err))
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, logger *zap.Logger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, logger)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	logger.Info("Received signal, shutting down server", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("Server stopped")
	return nil
}

func (d ServerDependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
