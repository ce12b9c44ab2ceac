// Package listeners keeps an ordered set of callbacks that are invoked
// synchronously, in registration order, on every notification.
package listeners

import (
	"context"
	"sync"
)

type entry[T any] struct {
	id uint64
	fn func(context.Context, T)
}

// List is safe for concurrent use. The zero value is ready.
type List[T any] struct {
	mu      sync.Mutex
	next    uint64
	entries []entry[T]
}

// Add registers fn and returns a function removing it. Removing twice is a no-op.
func (l *List[T]) Add(fn func(context.Context, T)) (remove func()) {
	l.mu.Lock()
	id := l.next
	l.next++
	l.entries = append(l.entries, entry[T]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *List[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// Notify calls every registered callback with v. Callbacks added or removed
// during a notification take effect from the next one.
func (l *List[T]) Notify(ctx context.Context, v T) {
	l.mu.Lock()
	snapshot := make([]entry[T], len(l.entries))
	copy(snapshot, l.entries)
	l.mu.Unlock()

	for _, e := range snapshot {
		e.fn(ctx, v)
	}
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Clear drops every callback.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}
