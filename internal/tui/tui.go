// Package tui implements the terminal lookup form: a Bubble Tea program
// that collects account numbers and a bank, runs the batch lookup through
// the shared query client and renders the results.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/models"
	tea "github.com/charmbracelet/bubbletea"
)

// LocalSessionID is the form session used by the terminal client.
const LocalSessionID = "local"

var ErrNoBanks = errors.New("bank list is empty")

type TUI struct {
	queryClient service.QueryClient
	banks       []models.Bank
	buildInfo   models.AppBuildInfo

	logger *logger.Logger
}

func New(queryClient service.QueryClient, banks []models.Bank, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if len(banks) == 0 {
		return nil, ErrNoBanks
	}

	return &TUI{
		queryClient: queryClient,
		banks:       banks,
		buildInfo:   buildInfo,
		logger:      logger,
	}, nil
}

// Run shows the lookup form until the user quits or ctx is canceled.
func (t *TUI) Run(ctx context.Context) error {
	model := newFormModel(ctx, t.queryClient, t.banks, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if result, ok := finalModel.(formModel); ok {
		t.logger.Debug().
			Str("status", string(result.state.Status)).
			Int("results", len(result.state.Results)).
			Msg("lookup form closed")
	}

	return nil
}
