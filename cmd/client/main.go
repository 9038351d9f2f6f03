package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/internal/banks"
	"github.com/MKhiriev/go-account-checker/internal/client"
	"github.com/MKhiriev/go-account-checker/internal/config"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/internal/tui"
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

	log := logger.NewClientLogger("account-checker-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	bankList, err := banks.Load(cfg.BanksFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading bank list")
	}

	lookupAdapter, err := adapter.NewHTTPLookupAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create lookup adapter")
	}

	services := service.NewServices(lookupAdapter, bankList, service.Options{
		MaxConcurrentLookups: cfg.Workers.MaxConcurrentLookups,
		Version:              cfg.Version,
		BuildInfo:            buildInfo,
	}, log)

	ui, err := tui.New(services.QueryClient, bankList.All(), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
