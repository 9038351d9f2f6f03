// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/internal/mock"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bcaResult(accountNumber, accountName string) models.LookupResult {
	return models.LookupResult{
		BankCode:      "BCA",
		BankName:      "Bank BCA",
		AccountNumber: accountNumber,
		AccountName:   accountName,
	}
}

// TestLookup_PreservesInputOrder makes the first lookup finish last and
// checks that the results still follow the input order.
func TestLookup_PreservesInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookupAdapter := mock.NewMockLookupAdapter(ctrl)

	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "BCA", "123").DoAndReturn(
		func(ctx context.Context, _, _ string) (models.LookupResult, error) {
			time.Sleep(50 * time.Millisecond)
			return bcaResult("123", "Alice"), nil
		})
	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "BCA", "456").Return(bcaResult("456", "Bob"), nil)

	svc := service.NewLookupService(lookupAdapter, 0)
	got, err := svc.Lookup(context.Background(), "BCA", []string{"123", "456"})

	require.NoError(t, err)
	assert.Equal(t, []models.LookupResult{bcaResult("123", "Alice"), bcaResult("456", "Bob")}, got)
}

func TestLookup_EmptyBatch_NoCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookupAdapter := mock.NewMockLookupAdapter(ctrl)

	svc := service.NewLookupService(lookupAdapter, 4)
	got, err := svc.Lookup(context.Background(), "BCA", nil)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLookup_OneFailure_FailsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookupAdapter := mock.NewMockLookupAdapter(ctrl)

	notFound := fmt.Errorf("%w: no such account", adapter.ErrNotFound)
	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "BCA", "123").Return(bcaResult("123", "Alice"), nil).AnyTimes()
	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "BCA", "456").Return(models.LookupResult{}, notFound)

	svc := service.NewLookupService(lookupAdapter, 0)
	got, err := svc.Lookup(context.Background(), "BCA", []string{"123", "456"})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrBatchLookupFailed)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Contains(t, err.Error(), "456")
}

// TestLookup_FailureCancelsOthers checks that in-flight lookups see their
// context canceled once another lookup of the batch has failed.
func TestLookup_FailureCancelsOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookupAdapter := mock.NewMockLookupAdapter(ctrl)

	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "bca", "slow").DoAndReturn(
		func(ctx context.Context, _, _ string) (models.LookupResult, error) {
			select {
			case <-ctx.Done():
				return models.LookupResult{}, ctx.Err()
			case <-time.After(5 * time.Second):
				return models.LookupResult{}, errors.New("not canceled")
			}
		}).MaxTimes(1)
	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "bca", "bad").Return(models.LookupResult{}, adapter.ErrInternalServerError)

	start := time.Now()
	_, err := service.NewLookupService(lookupAdapter, 0).
		Lookup(context.Background(), "bca", []string{"slow", "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestLookup_RespectsConcurrencyLimit(t *testing.T) {
	const (
		limit    = 3
		accounts = 12
	)

	ctrl := gomock.NewController(t)
	lookupAdapter := mock.NewMockLookupAdapter(ctrl)

	var inFlight, maxInFlight atomic.Int64
	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "bca", gomock.Any()).DoAndReturn(
		func(ctx context.Context, bankCode, accountNumber string) (models.LookupResult, error) {
			n := inFlight.Add(1)
			for {
				prev := maxInFlight.Load()
				if n <= prev || maxInFlight.CompareAndSwap(prev, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return models.LookupResult{BankCode: bankCode, AccountNumber: accountNumber}, nil
		}).Times(accounts)

	numbers := make([]string, accounts)
	for i := range numbers {
		numbers[i] = fmt.Sprintf("%03d", i)
	}

	got, err := service.NewLookupService(lookupAdapter, limit).Lookup(context.Background(), "bca", numbers)

	require.NoError(t, err)
	require.Len(t, got, accounts)
	for i, r := range got {
		assert.Equal(t, numbers[i], r.AccountNumber)
	}
	assert.LessOrEqual(t, maxInFlight.Load(), int64(limit))
}

func TestLookup_Unbounded_RunsConcurrently(t *testing.T) {
	const accounts = 5

	ctrl := gomock.NewController(t)
	lookupAdapter := mock.NewMockLookupAdapter(ctrl)

	// every lookup waits until all of them have started
	var started atomic.Int64
	allStarted := make(chan struct{})
	lookupAdapter.EXPECT().LookupAccount(gomock.Any(), "bca", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, accountNumber string) (models.LookupResult, error) {
			if started.Add(1) == accounts {
				close(allStarted)
			}
			select {
			case <-allStarted:
				return models.LookupResult{AccountNumber: accountNumber}, nil
			case <-time.After(2 * time.Second):
				return models.LookupResult{}, errors.New("lookups were not concurrent")
			}
		}).Times(accounts)

	_, err := service.NewLookupService(lookupAdapter, -1).
		Lookup(context.Background(), "bca", []string{"1", "2", "3", "4", "5"})
	require.NoError(t, err)
}
