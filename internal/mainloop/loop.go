package mainloop

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Loop runs queued functions one at a time on a single goroutine. All
// published state is mutated from here.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
	}
}

// Dispatch queues fn and returns immediately. Functions run in dispatch order.
func (l *Loop) Dispatch(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run drains the queue until ctx is done.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}

		for {
			l.mu.Lock()
			batch := l.queue
			l.queue = nil
			l.mu.Unlock()

			if len(batch) == 0 {
				break
			}
			for _, fn := range batch {
				l.run(fn)
			}
		}
	}
}

func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("main loop task panicked")
		}
	}()
	fn()
}

// Sync waits until every function dispatched before the call has run.
func (l *Loop) Sync(ctx context.Context) error {
	done := make(chan struct{})
	l.Dispatch(func() { close(done) })

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
