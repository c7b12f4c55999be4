// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface implemented by background jobs with a start/stop
// lifecycle, such as the periodic sync job.
type Worker interface {
	// Start launches the worker's background goroutine with the given run
	// interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the worker to exit and blocks until it has terminated.
	Stop()
}
