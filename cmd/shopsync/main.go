// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivolkoff/shopsync/internal/config"
	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/internal/remote"
	"github.com/ivolkoff/shopsync/internal/service"
	"github.com/ivolkoff/shopsync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("shopsync")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	client, err := remote.NewHTTPClient(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote client")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, client, cfg.Sync)

	ctx := log.WithContext(context.Background())

	events, unsubscribe := services.Status.Subscribe()
	defer unsubscribe()
	go reportStatus(events)

	if err := services.Sync.Synchronize(ctx); err != nil {
		log.Error().Err(err).Msg("initial sync failed")
	}

	if !cfg.Sync.Background {
		return
	}

	services.Job.Start(ctx, cfg.Sync.Interval)
	defer services.Job.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
}

func reportStatus(events <-chan service.SyncStatusEvent) {
	for event := range events {
		switch event.State {
		case service.SyncStateSyncing:
			fmt.Println("sync: started")
		case service.SyncStateSuccess:
			fmt.Printf("sync: ok, %d record(s) pushed\n", event.Processed)
		case service.SyncStateError:
			fmt.Printf("sync: failed: %v\n", event.Err)
		}
	}
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
