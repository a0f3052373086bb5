package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"guardian/internal/config"
	"guardian/internal/ingest"
	"guardian/internal/logging"
	"guardian/internal/mediastore"
	"guardian/internal/server"
	"guardian/internal/verifier"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := mediastore.Open(cfg)
	if err != nil {
		logger.Error("open media store", slog.String("error", err.Error()))
		return
	}
	defer store.Close()

	az, an, notifier := buildPipeline(cfg)
	ingestor := ingest.NewService(cfg, store, az, an, notifier, logger)
	verifierEngine := verifier.NewEngine(store, logger)

	daemon, err := server.NewDaemon(cfg, store, logger)
	if err != nil {
		logger.Error("create daemon", slog.String("error", err.Error()))
		return
	}
	if err := daemon.Start(); err != nil {
		logger.Error("start daemon", slog.String("error", err.Error()))
		return
	}
	defer daemon.Stop()

	srv, err := server.New(cfg, store, ingestor, verifierEngine, daemon, logger)
	if err != nil {
		logger.Error("create api server", slog.String("error", err.Error()))
		return
	}
	if err := srv.Start(ctx); err != nil {
		logger.Error("start api server", slog.String("error", err.Error()))
		return
	}

	<-ctx.Done()
	logger.Info("guardiand shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Warn("api shutdown", slog.String("error", err.Error()))
	}
}
