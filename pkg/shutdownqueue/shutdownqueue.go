// Package shutdownqueue runs cleanup tasks in LIFO order when the process
// stops.
//
// A Queue is drained once by Shutdown. Tasks are named so the drain can be
// followed in the logs; panics are recovered and every failure is returned
// through errors.Join. A process-wide queue backs the package-level Add and
// Shutdown helpers:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	defer shutdownqueue.Shutdown(ctx)
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Task is a shutdown function. It should honor ctx and return an error
// if it can't finish (or ctx is canceled).
type Task func(ctx context.Context) error

type entry struct {
	name string
	task Task
}

type Queue struct {
	mu     sync.Mutex
	tasks  []entry
	closed bool
	log    *slog.Logger
}

// New returns an empty queue that logs through log (slog.Default when nil).
func New(log *slog.Logger) *Queue {
	return &Queue{tasks: make([]entry, 0, 8), log: log}
}

var defaultQueue = New(nil)

// Add registers a task on the process-wide queue.
func Add(name string, t Task) {
	defaultQueue.Add(name, t)
}

// Shutdown drains the process-wide queue.
func Shutdown(ctx context.Context) error {
	return defaultQueue.Shutdown(ctx)
}

func (q *Queue) logger() *slog.Logger {
	if q.log != nil {
		return q.log
	}

	return slog.Default()
}

// Add registers a task to be run on Shutdown, in LIFO order.
// If t is nil or shutdown has already started, Add does nothing.
func (q *Queue) Add(name string, t Task) {
	if t == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.logger().Warn("shutdown task registered after shutdown started", "task", name)
		return
	}

	q.tasks = append(q.tasks, entry{name: name, task: t})
}

// Shutdown drains all registered tasks in LIFO order. Calls after the first
// are no-ops.
//
// If ctx is canceled or times out mid-drain, Shutdown stops early and returns
// an error that includes both the context error and any task errors so far.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()

	if q.closed && len(q.tasks) == 0 {
		q.mu.Unlock()

		return nil
	}

	q.closed = true
	tasks := q.tasks
	q.tasks = nil

	q.mu.Unlock()

	var errs []error

	for i := len(tasks) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))

			return errors.Join(errs...)
		default:
		}

		err := q.run(ctx, tasks[i])
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (q *Queue) run(ctx context.Context, e entry) (err error) {
	start := time.Now()

	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task %q: %v", e.name, r)
		}

		if err != nil {
			q.logger().Error("shutdown task failed", "task", e.name, "duration", time.Since(start), "error", err)
			return
		}

		q.logger().Info("shutdown task done", "task", e.name, "duration", time.Since(start))
	}()

	err = e.task(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}

	return nil
}
