package workers

import (
	"context"
	"sync"
)

// Workers runs a set of background workers and stops them together.
type Workers struct {
	workers []Worker

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewWorkers groups workers so they can be started and stopped at once.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start runs every worker in its own goroutine. The workers stop when ctx is
// canceled or when Stop is called.
func (w *Workers) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Stop cancels the workers and waits for all of them to return. It is a
// no-op if Start was never called.
func (w *Workers) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	w.wg.Wait()
}
