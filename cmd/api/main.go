package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/auth"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/config"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/db"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/logger"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/metrics"
	repo "github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/repository/memory"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/repository/postgres"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repos repo.Repositories
	switch cfg.Store {
	case "memory":
		repos = memory.NewRepositories()
		log.Warn("using in-memory store; data is lost on exit")
	default:
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
		repos = postgres.NewRepositories(pool)
	}

	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	refresher := services.NewStatsRefresher(repos.Certifications, wp)
	userSvc := services.NewUserService(repos.Users)
	certSvc := services.NewCertificationService(repos.Certifications, repos.Users, refresher)
	dashSvc := services.NewDashboardService(repos.Certifications)

	if err := userSvc.SeedDemo(ctx); err != nil {
		log.Error("demo seed", "err", err)
		os.Exit(1)
	}

	metrics.Init()
	refresher.Refresh()

	r := api.NewRouter(api.RouterDeps{
		Cfg:     cfg,
		TM:      tm,
		UserSvc: userSvc,
		CertSvc: certSvc,
		DashSvc: dashSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.Store)
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
