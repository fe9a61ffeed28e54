package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/revelve/revelve-backend/internal/api"
	"github.com/revelve/revelve-backend/internal/config"
	"github.com/revelve/revelve-backend/internal/db"
	"github.com/revelve/revelve-backend/internal/logger"
	"github.com/revelve/revelve-backend/internal/metrics"
	"github.com/revelve/revelve-backend/internal/repository/postgres"
	"github.com/revelve/revelve-backend/internal/services"
	"github.com/revelve/revelve-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	ledgerSvc := services.NewLedgerService(repos.Ledger, repos.AuditLogs, wp)
	campaignSvc := services.NewCampaignService(repos.Campaigns, repos.Posts, ledgerSvc)
	dashboardSvc := services.NewDashboardService(repos.Campaigns, repos.Posts)

	metrics.Init()
	r := api.NewRouter(cfg, ledgerSvc, campaignSvc, dashboardSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
