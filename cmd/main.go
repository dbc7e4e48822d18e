package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adbooks/internal/adapter/directory"
	httpadapter "adbooks/internal/adapter/http"
	mongoadapter "adbooks/internal/adapter/mongo"
	"adbooks/internal/adapter/postgres"
	"adbooks/internal/adapter/usecase"
	"adbooks/internal/config"
	"adbooks/internal/db"
)

// main is the entry point of the accounting service. It loads
// configuration, optionally runs ledger migrations, connects to the
// ledger database and the campaign store, wires the read services and
// starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("ledger database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	mongoClient, campaignDB, err := db.NewMongoDatabase(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("campaign store connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("campaign store disconnect error", slog.Any("error", err))
		}
	}()

	if cfg.SeedDemoData {
		if err = db.Seed(ctx, pool, campaignDB); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	ledger := postgres.NewLedgerRepository(pool)
	campaigns := mongoadapter.NewCampaignRepository(campaignDB)
	dir := directory.NewClient(cfg.Directory.Addr, cfg.Directory.Timeout)

	budget := usecase.NewBudgetAggregator(campaigns)
	outstanding := usecase.NewOutstandingBudgetCalculator(budget, ledger)
	stats := usecase.NewBalanceStatsService(ledger, outstanding, dir)
	credit := usecase.NewCreditCheckService(ledger, budget, dir)

	handler := httpadapter.NewHandler(stats, credit, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
