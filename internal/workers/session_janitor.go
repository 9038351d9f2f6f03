// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
)

// SessionJanitor periodically evicts form sessions that have not been used
// for longer than ttl.
type SessionJanitor struct {
	queryClient service.QueryClient
	ttl         time.Duration
	interval    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewSessionJanitor creates a janitor that checks queryClient every interval.
func NewSessionJanitor(queryClient service.QueryClient, ttl, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		queryClient: queryClient,
		ttl:         ttl,
		interval:    interval,
		now:         time.Now,
		logger:      logger,
	}
}

// Run implements [Worker].
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().
		Dur("ttl", j.ttl).
		Dur("interval", j.interval).
		Msg("session janitor started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *SessionJanitor) sweep() {
	if evicted := j.queryClient.Evict(j.now().Add(-j.ttl)); evicted > 0 {
		j.logger.Debug().Int("evicted", evicted).Msg("idle sessions evicted")
	}
}
