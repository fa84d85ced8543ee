// Package workers provides the background workers of the city guide server.
// It defines the Worker interface and a Workers aggregate that starts every
// worker with the process context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutine and stop it
// when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
