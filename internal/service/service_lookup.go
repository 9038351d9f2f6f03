// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/models"
	"golang.org/x/sync/errgroup"
)

type lookupService struct {
	adapter adapter.LookupAdapter

	// maxConcurrent caps in-flight lookups of one batch; <= 0 means no cap
	maxConcurrent int
}

// NewLookupService creates a [LookupService] that calls lookupAdapter with
// at most maxConcurrent requests in flight per batch.
func NewLookupService(lookupAdapter adapter.LookupAdapter, maxConcurrent int) LookupService {
	return &lookupService{
		adapter:       lookupAdapter,
		maxConcurrent: maxConcurrent,
	}
}

// Lookup implements [LookupService].
//
// Every goroutine writes only its own index of the pre-sized results slice,
// so the output follows input order whatever the completion order is. The
// first failure cancels the remaining lookups.
func (s *lookupService) Lookup(ctx context.Context, bankCode string, accountNumbers []string) ([]models.LookupResult, error) {
	results := make([]models.LookupResult, len(accountNumbers))
	if len(accountNumbers) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.maxConcurrent > 0 {
		g.SetLimit(s.maxConcurrent)
	}

	for i, accountNumber := range accountNumbers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := s.adapter.LookupAccount(gctx, bankCode, accountNumber)
			if err != nil {
				return fmt.Errorf("%w: account %s: %w", ErrBatchLookupFailed, accountNumber, err)
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
