package observable

import (
	"sync"
	"ulascansenturk/weekly-weather/internal/mainloop"
)

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Value holds the latest published T. Writes and deliveries happen on the
// main loop; Get may be called from anywhere.
type Value[T any] struct {
	loop *mainloop.Loop

	mu          sync.RWMutex
	current     T
	subscribers []subscriber[T]
	nextID      uint64
}

func New[T any](loop *mainloop.Loop, initial T) *Value[T] {
	return &Value[T]{
		loop:    loop,
		current: initial,
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set publishes next to every subscriber, in subscription order.
func (v *Value[T]) Set(next T) {
	v.loop.Dispatch(func() {
		v.mu.Lock()
		v.current = next
		subs := make([]subscriber[T], len(v.subscribers))
		copy(subs, v.subscribers)
		v.mu.Unlock()

		for _, sub := range subs {
			sub.fn(next)
		}
	})
}

// Subscribe delivers the current value and then every later one until the
// returned function is called.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.mu.Unlock()

	v.loop.Dispatch(func() {
		v.mu.Lock()
		v.subscribers = append(v.subscribers, subscriber[T]{id: id, fn: fn})
		current := v.current
		v.mu.Unlock()

		fn(current)
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			v.loop.Dispatch(func() {
				v.mu.Lock()
				defer v.mu.Unlock()
				for i, sub := range v.subscribers {
					if sub.id == id {
						v.subscribers = append(v.subscribers[:i:i], v.subscribers[i+1:]...)
						return
					}
				}
			})
		})
	}
}
