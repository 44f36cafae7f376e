package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/leitnerflash/internal/api"
	"github.com/vytor/leitnerflash/internal/app"
	"github.com/vytor/leitnerflash/internal/config"
	"github.com/vytor/leitnerflash/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Leitnerflash Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("practice_limit=%d", cfg.PracticeLimit)

	a, err := app.New(cfg)
	if err != nil {
		log.Error("failed to initialise: %v", err)
		os.Exit(1)
	}

	srv := &api.Server{
		ProfileService:  a.ProfileService,
		CardService:     a.CardService,
		PracticeService: a.PracticeService,
		ImportService:   a.ImportService,
		DB:              a.DB,
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.ImportPool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Queued imports drain before the database closes.
	log.Debug("stopping import pool and closing database")
	if err := a.Close(); err != nil {
		log.Error("close error: %v", err)
	}
	cancel()

	log.Info("===========================================")
	log.Info("Leitnerflash Server Stopped")
	log.Info("===========================================")
}
