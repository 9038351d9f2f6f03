// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// them together, and the session janitor that evicts idle form sessions.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is canceled. Workers are started in their own
// goroutine by [Workers.Start].
type Worker interface {
	Run(ctx context.Context)
}
