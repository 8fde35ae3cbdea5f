package main

import (
	"context"
	"fmt"

	"github.com/arenacast/backend/internal/cache"
	"github.com/arenacast/backend/internal/config"
	"github.com/arenacast/backend/internal/handler"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/server"
	"github.com/arenacast/backend/internal/service"
	"github.com/arenacast/backend/internal/store"
	"github.com/arenacast/backend/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("arenacast-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	views := cache.NewViewCache(cfg.Cache.ViewTTL)
	services := service.NewServices(storages, views, log)

	workers.NewWorkers(
		workers.NewCacheSweeper(views, cfg.Cache.SweepInterval, log),
	).Run(ctx)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
