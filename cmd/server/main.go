package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/handler"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/server"
	"github.com/MKhiriev/go-whitelist-keeper/internal/service"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/internal/workers"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("whitelistd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("whitelist", cfg.Storage.WhitelistPath).
		Str("address", cfg.Server.HTTPAddress).
		Bool("remote_enabled", cfg.Remote.Enabled).
		Bool("schedule_enabled", cfg.Sync.ScheduleEnabled).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	remote := adapter.NewRemoteConsole(cfg.Remote, log.Component("rcon"))

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, remote, cfg, build, log.Component("service"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(
		workers.NewScheduledSync(services.ReconcileService, cfg.Sync, log.Component("scheduler")),
	)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
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
