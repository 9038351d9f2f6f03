package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
)

type App struct {
	services *service.Services
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.Services, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errIncompleteApp
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is asked to stop.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Int("banks", a.services.Banks.Len()).Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
