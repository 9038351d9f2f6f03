// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusInput focus = iota
	focusBank
)

const statusTTL = 2 * time.Second

type formModel struct {
	ctx         context.Context
	queryClient service.QueryClient

	banks   []models.Bank
	bankIdx int

	input   textarea.Model
	spinner spinner.Model
	focus   focus

	// state mirrors the query client state of LocalSessionID
	state models.FormState

	status        string
	showBuildInfo bool
	buildInfo     models.AppBuildInfo

	copyToClipboard func(string) error
}

func newFormModel(ctx context.Context, queryClient service.QueryClient, banks []models.Bank, buildInfo models.AppBuildInfo) formModel {
	input := textarea.New()
	input.Placeholder = "Type your account numbers here, each on a new line."
	input.ShowLineNumbers = false
	input.SetWidth(50)
	input.SetHeight(6)
	input.Focus()

	m := formModel{
		ctx:             ctx,
		queryClient:     queryClient,
		banks:           banks,
		input:           input,
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot)),
		state:           queryClient.State(LocalSessionID),
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
	}

	// restore the previous input of the session, if any
	if m.state.RawAccountNumbers != "" {
		m.input.SetValue(m.state.RawAccountNumbers)
	}
	for i, b := range banks {
		if strings.EqualFold(b.Code, m.state.SelectedBankCode) {
			m.bankIdx = i
		}
	}

	return m
}

func (m formModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case lookupDoneMsg:
		if errors.Is(msg.err, service.ErrSubmissionInProgress) {
			return m, nil
		}
		m.state = msg.state
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.state.IsSubmitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.input.SetWidth(min(msg.Width-8, 80))
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m formModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m = m.toggleFocus()
		return m, nil
	}

	if m.focus == focusInput {
		if key.Matches(msg, keys.esc) {
			m = m.toggleFocus()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.left):
		m.bankIdx = (m.bankIdx - 1 + len(m.banks)) % len(m.banks)
	case key.Matches(msg, keys.right):
		m.bankIdx = (m.bankIdx + 1) % len(m.banks)
	case key.Matches(msg, keys.enter):
		return m.submit()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyResults()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m formModel) toggleFocus() formModel {
	if m.focus == focusInput {
		m.focus = focusBank
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
	return m
}

// submit starts a batch for the current input. It is a no-op while a batch
// is pending, like the disabled submit button of the web form.
func (m formModel) submit() (tea.Model, tea.Cmd) {
	if m.state.IsSubmitting() {
		return m, nil
	}

	raw := m.input.Value()
	bankCode := m.selectedBank().Code

	m.state.RawAccountNumbers = raw
	m.state.SelectedBankCode = bankCode
	m.state.Status = models.StatusPending
	m.state.Err = ""

	return m, tea.Batch(m.cmdSubmit(raw, bankCode), m.spinner.Tick)
}

func (m formModel) selectedBank() models.Bank {
	return m.banks[m.bankIdx]
}

func (m formModel) cmdSubmit(raw, bankCode string) tea.Cmd {
	ctx, queryClient := m.ctx, m.queryClient
	return func() tea.Msg {
		state, err := queryClient.Submit(ctx, LocalSessionID, raw, bankCode)
		return lookupDoneMsg{state: state, err: err}
	}
}

func (m formModel) cmdCopyResults() tea.Cmd {
	if !m.state.HasResults() {
		return nil
	}

	text := formatResults(m.state.Results)
	copyToClipboard := m.copyToClipboard
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m formModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(labelStyle.Render("Account Numbers"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("To check multiple accounts, separate the account numbers with a new line."))
	b.WriteString("\n\n")

	bankLine := fmt.Sprintf("‹ %s ›", m.selectedBank().Name)
	if m.focus == focusBank {
		bankLine = focusedStyle.Render(bankLine)
	}
	b.WriteString(labelStyle.Render("Bank Name"))
	b.WriteString("  ")
	b.WriteString(bankLine)
	b.WriteString("\n\n")

	if m.state.IsSubmitting() {
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking...")
	} else {
		b.WriteString("[ Check ]")
	}
	b.WriteString("\n")

	if m.state.Status == models.StatusFailed {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fitText("Error fetching data: "+m.state.Err, 120)))
		b.WriteString("\n")
	}

	if m.state.HasResults() {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Results"))
		b.WriteString("\n")
		b.WriteString(resultBoxStyle.Render(formatResults(m.state.Results)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "tab: switch focus  ctrl+s: check"
	if m.focus == focusBank {
		hotKeys = "tab: switch focus  ←/→: bank  enter: check  c: copy results  i: about"
	}

	return appStyle.Render(renderPage("CHECK BANK ACCOUNTS", b.String(), hotKeys))
}
