package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kirychukyurii/deck-status/internal/api"
	"github.com/kirychukyurii/deck-status/internal/cache"
	"github.com/kirychukyurii/deck-status/internal/config"
	"github.com/kirychukyurii/deck-status/internal/healthcheck"
	"github.com/kirychukyurii/deck-status/internal/logger"
	"github.com/kirychukyurii/deck-status/internal/repository"
	"github.com/kirychukyurii/deck-status/internal/service"
	"github.com/kirychukyurii/deck-status/internal/session"
	"github.com/kirychukyurii/deck-status/pkg/httpserver"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	log := logger.New()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load configuration",
			"error", err.Error(),
		)
		os.Exit(1)
	}

	log = logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))
	log.Info("configuration loaded",
		"deck_api", cfg.DeckAPI.BaseURL,
		"deck_count", cfg.DeckAPI.DeckCount,
	)

	// Create deck API repository
	repo, err := repository.NewDeckRepository(cfg.DeckAPI, log)
	if err != nil {
		log.Error("failed to create deck api client",
			"error", err.Error(),
		)
		os.Exit(1)
	}

	sessions := session.NewStore(cache.New(cfg.Session.TTL), cfg.Session.TTL)
	updater := service.NewDeckStatusUpdater(repo, cfg.DeckAPI.DeckCount, log)

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthChecker := healthcheck.NewChecker(&cfg.HealthCheck, repo, log)
	healthChecker.Start(ctx)

	handler, err := api.NewHandler(updater, sessions, healthChecker, repo.BaseURL(), cfg.Server.BasePath, log)
	if err != nil {
		log.Error("failed to load page templates",
			"error", err.Error(),
		)
		os.Exit(1)
	}

	srv := httpserver.New(
		cfg.Server.Addr,
		handler.Router(),
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		log,
	)

	log.Info("starting deck-status service")

	if err := srv.Run(ctx); err != nil {
		log.Error("server error",
			"error", err.Error(),
		)
	}

	log.Info("shutting down health checker")
	stop()
	healthChecker.Stop()

	log.Info("shutdown complete")
}
