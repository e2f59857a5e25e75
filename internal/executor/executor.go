package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
)

var (
	// ErrQueueFull is returned when the pending queue is at capacity
	ErrQueueFull = errors.New("draw queue is full")

	// ErrExecutorClosed is returned for enqueues after shutdown began
	ErrExecutorClosed = errors.New("executor is shut down")
)

// Task is one unit of queued work. The context is the executor's lifetime
// context; tasks needing a deadline derive their own.
type Task func(ctx context.Context)

// Executor runs tasks strictly one at a time in arrival order
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// Enqueue adds a task and returns its 1-based position in line,
	// counting the task currently running
	Enqueue(task Task) (int, error)

	// Len reports the number of queued and in-flight tasks
	Len() int

	// Shutdown stops accepting tasks and waits for the in-flight task to
	// finish, bounded by ctx
	Shutdown(ctx context.Context) error
}

// SequentialExecutor drains a bounded FIFO queue on a single goroutine,
// pausing between tasks only while more work is waiting.
type SequentialExecutor struct {
	mu       sync.Mutex
	queue    chan Task
	pending  int
	closed   bool
	cooldown time.Duration
	clock    adapter.Clock
	lifetime context.Context
	cancel   context.CancelFunc
	stop     chan struct{}
	done     chan struct{}
}

// NewSequentialExecutor creates an executor with the given inter-task
// cooldown and queue capacity, and starts its drain goroutine.
func NewSequentialExecutor(cooldown time.Duration, capacity int, clock adapter.Clock) *SequentialExecutor {
	lifetime, cancel := context.WithCancel(context.Background())
	e := &SequentialExecutor{
		queue:    make(chan Task, capacity),
		cooldown: cooldown,
		clock:    clock,
		lifetime: lifetime,
		cancel:   cancel,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go e.run()
	return e
}

// Enqueue adds a task to the queue. The returned position is 1 when the task
// will run next, which includes running immediately on an idle executor.
func (e *SequentialExecutor) Enqueue(task Task) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0, ErrExecutorClosed
	}

	select {
	case e.queue <- task:
		e.pending++
		return e.pending, nil
	default:
		return 0, ErrQueueFull
	}
}

// Len reports queued plus in-flight tasks
func (e *SequentialExecutor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// Shutdown closes the queue and waits for the drain goroutine, bounded by
// ctx. The in-flight task is allowed to finish; queued tasks still run. Once
// the wait ends the lifetime context is cancelled, which on an expired ctx
// unblocks whatever the in-flight task is waiting on.
func (e *SequentialExecutor) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.queue)
		close(e.stop)
	}
	e.mu.Unlock()

	select {
	case <-e.done:
		e.cancel()
		return nil
	case <-ctx.Done():
		e.cancel()
		return ctx.Err()
	}
}

func (e *SequentialExecutor) run() {
	defer close(e.done)

	for task := range e.queue {
		e.runTask(task)

		e.mu.Lock()
		e.pending--
		waiting := len(e.queue)
		e.mu.Unlock()

		// No cooldown when the queue is idle; the next request should
		// not inherit a stale pause
		if waiting == 0 || e.cooldown <= 0 {
			continue
		}
		select {
		case <-e.clock.After(e.cooldown):
		case <-e.stop:
		}
	}
}

func (e *SequentialExecutor) runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Errorf("queued task panicked: %v", r), zap.Stack("stack"))
		}
	}()
	task(e.lifetime)
}
