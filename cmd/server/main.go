package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/internal/banks"
	"github.com/MKhiriev/go-account-checker/internal/config"
	"github.com/MKhiriev/go-account-checker/internal/handler"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/server"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/internal/workers"
	"github.com/MKhiriev/go-account-checker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("account-checker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	bankList, err := banks.Load(cfg.App.BanksFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading bank list")
	}

	lookupAdapter, err := adapter.NewHTTPLookupAdapter(config.ClientAdapter{
		LookupURL:      cfg.Adapter.LookupURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating lookup adapter")
	}

	services := service.NewServices(lookupAdapter, bankList, service.Options{
		MaxConcurrentLookups: cfg.Workers.MaxConcurrentLookups,
		Version:              cfg.App.Version,
		BuildInfo:            buildInfo,
	}, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx := context.Background()

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionJanitor(services.QueryClient, cfg.Workers.SessionTTL, cfg.Workers.JanitorInterval, log),
	)
	backgroundWorkers.Start(ctx)
	defer backgroundWorkers.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
