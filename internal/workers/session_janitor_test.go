package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/mock"
	"go.uber.org/mock/gomock"
)

func TestSessionJanitor_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	queryClient := mock.NewMockQueryClient(ctrl)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	queryClient.EXPECT().Evict(now.Add(-30 * time.Minute)).Return(2)

	j := NewSessionJanitor(queryClient, 30*time.Minute, time.Minute, logger.Nop())
	j.now = func() time.Time { return now }

	j.sweep()
}

func TestSessionJanitor_Run_EvictsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	queryClient := mock.NewMockQueryClient(ctrl)

	swept := make(chan struct{}, 1)
	queryClient.EXPECT().Evict(gomock.Any()).DoAndReturn(func(before time.Time) int {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 0
	}).MinTimes(1)

	j := NewSessionJanitor(queryClient, time.Minute, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		j.Run(ctx)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitor_Run_StopsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	queryClient := mock.NewMockQueryClient(ctrl)

	j := NewSessionJanitor(queryClient, time.Minute, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		j.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
