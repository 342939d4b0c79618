// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/adapter"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/handler"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/server"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/workers"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("wildlife-server")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	detector, err := adapter.NewHTTPDetector(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating detector adapter")
	}

	services, err := service.NewServices(storages, detector, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.SeedService.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding accounts")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services, storages, cfg.Workers, log).Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
	log.Info().Msg("stopped")
}
