package workers

import (
	"context"
	"time"
)

// scheduled pairs a worker with its run interval.
type scheduled struct {
	worker   Worker
	interval time.Duration
}

// Workers aggregates background workers so the application can start and
// stop them as a group. Workers start in registration order and stop in
// reverse order.
type Workers struct {
	workers []scheduled
}

// Register adds worker to the group with the given run interval. Must be
// called before Start.
func (w *Workers) Register(worker Worker, interval time.Duration) {
	w.workers = append(w.workers, scheduled{worker: worker, interval: interval})
}

// Start launches every registered worker.
func (w *Workers) Start(ctx context.Context) {
	for _, s := range w.workers {
		s.worker.Start(ctx, s.interval)
	}
}

// Stop stops every registered worker in reverse registration order and
// blocks until all of them have exited.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].worker.Stop()
	}
}
