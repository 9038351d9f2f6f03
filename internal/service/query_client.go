// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/app"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/models"
)

// formSession holds the form state of one user. mu guards state and
// lastSeen; it is never held while a batch is in flight.
type formSession struct {
	mu       sync.Mutex
	state    models.FormState
	lastSeen time.Time
}

func (s *formSession) snapshot() models.FormState {
	st := s.state
	st.Results = slices.Clone(s.state.Results)
	return st
}

type queryClient struct {
	lookup LookupService

	mu       sync.Mutex
	sessions map[string]*formSession

	now    func() time.Time
	logger *logger.Logger
}

// NewQueryClient creates the [QueryClient] shared by all transports. It is
// constructed once at start-up and injected where needed.
func NewQueryClient(lookup LookupService, logger *logger.Logger) QueryClient {
	return &queryClient{
		lookup:   lookup,
		sessions: make(map[string]*formSession),
		now:      time.Now,
		logger:   logger,
	}
}

// session returns the session for id, creating it if needed, and marks it
// as recently used.
func (c *queryClient) session(id string) *formSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[id]
	if !ok {
		s = &formSession{state: models.FormState{Status: models.StatusIdle}}
		c.sessions[id] = s
	}

	s.mu.Lock()
	s.lastSeen = c.now()
	s.mu.Unlock()

	return s
}

// Submit implements [QueryClient].
func (c *queryClient) Submit(ctx context.Context, sessionID, rawAccountNumbers, bankCode string) (models.FormState, error) {
	s := c.session(sessionID)

	s.mu.Lock()
	if s.state.Status == models.StatusPending {
		st := s.snapshot()
		s.mu.Unlock()
		return st, ErrSubmissionInProgress
	}
	s.state.RawAccountNumbers = rawAccountNumbers
	s.state.SelectedBankCode = bankCode
	s.state.Status = models.StatusPending
	s.state.Err = ""
	s.mu.Unlock()

	accountNumbers := ParseAccountNumbers(rawAccountNumbers)
	results, err := c.lookup.Lookup(ctx, bankCode, accountNumbers)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = c.now()

	if err != nil {
		logger.FromContextOr(ctx, c.logger).Error().Err(err).
			Str("session_id", sessionID).
			Str("bank_code", bankCode).
			Int("accounts", len(accountNumbers)).
			Msg(app.MsgErrorFetchingData)

		s.state.Status = models.StatusFailed
		s.state.Err = err.Error()
		return s.snapshot(), err
	}

	s.state.Results = results
	s.state.Status = models.StatusSucceeded
	return s.snapshot(), nil
}

// State implements [QueryClient].
func (c *queryClient) State(sessionID string) models.FormState {
	c.mu.Lock()
	s, ok := c.sessions[sessionID]
	c.mu.Unlock()

	if !ok {
		return models.FormState{Status: models.StatusIdle}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Evict implements [QueryClient].
func (c *queryClient) Evict(before time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for id, s := range c.sessions {
		s.mu.Lock()
		expired := s.lastSeen.Before(before) && s.state.Status != models.StatusPending
		s.mu.Unlock()

		if expired {
			delete(c.sessions, id)
			evicted++
		}
	}

	return evicted
}
