// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; processing happens on
// goroutines owned by the worker. Stop stops accepting work, finishes what is
// already queued and blocks until every goroutine has exited.
//
// Example implementation:
//
//	type MyWorker struct{ wg sync.WaitGroup }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    w.wg.Go(func() { /* background processing */ })
//	}
//
//	func (w *MyWorker) Stop() { w.wg.Wait() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
