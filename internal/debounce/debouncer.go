package debounce

import (
	"sync"
	"time"
)

type options struct {
	skip int
}

type Option func(*options)

// WithSkip ignores the first n pushed values.
func WithSkip(n int) Option {
	return func(o *options) {
		o.skip = n
	}
}

// Debouncer forwards a pushed value only once no other value has been pushed
// for the whole interval.
type Debouncer[T any] struct {
	interval time.Duration
	forward  func(T)

	mu      sync.Mutex
	timer   *time.Timer
	latest  T
	seq     uint64
	skip    int
	stopped bool
}

func New[T any](interval time.Duration, forward func(T), opts ...Option) *Debouncer[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Debouncer[T]{
		interval: interval,
		forward:  forward,
		skip:     o.skip,
	}
}

func (d *Debouncer[T]) Push(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.skip > 0 {
		d.skip--
		return
	}

	d.seq++
	d.latest = value
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.fire(seq)
	})
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	// a timer that lost the race with Stop or a newer Push is stale
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	value := d.latest
	d.timer = nil
	d.mu.Unlock()

	d.forward(value)
}

// Stop drops any pending value. Later pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
