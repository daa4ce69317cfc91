package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cadastroapp/cadastro/internal/config"
	"github.com/cadastroapp/cadastro/internal/logging"
	"github.com/cadastroapp/cadastro/internal/repository"
	"github.com/cadastroapp/cadastro/internal/sheets"
	"github.com/cadastroapp/cadastro/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded", "config", cfg.String())

	store, devMode := buildStore(context.Background(), cfg)

	repo := repository.New(store)
	server := web.NewServer(repo, cfg, devMode)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr(), "dev_mode", devMode)
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// buildStore picks the spreadsheet backend. Missing or broken Google
// Sheets configuration degrades to the simulated in-memory store
// instead of refusing to start; the health endpoint reports which mode
// is active.
func buildStore(ctx context.Context, cfg *config.Config) (sheets.Service, bool) {
	if !cfg.Sheets.Configured() {
		store := sheets.NewMemoryStore()
		slog.Warn("google sheets not configured, using simulated data",
			"spreadsheet_id", store.SpreadsheetID())
		return store, true
	}

	svc, err := sheets.NewService(ctx, cfg.Sheets.CredentialsPath())
	if err != nil {
		store := sheets.NewMemoryStore()
		slog.Error("google sheets authorization failed, using simulated data", "error", err)
		return store, true
	}

	slog.Info("google sheets connected")
	return sheets.NewClient(svc, cfg.Sheets.SpreadsheetID), false
}
